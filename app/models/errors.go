package models

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input: a non-positive amount, an
// unknown payment method, a missing identifier.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an absent student, term, fee structure or receipt.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NoChargeError reports a payment attempted against a term in which the
// student has nothing billed. A payment needs at least one charge to
// apply against.
type NoChargeError struct {
	StudentID string
	TermID    string
}

func (e *NoChargeError) Error() string {
	return fmt.Sprintf("student %s has no charges in term %s", e.StudentID, e.TermID)
}

// CarryOverConflict reports that a balance could not be forwarded because
// a regular charge already occupies the (student, term, purpose) slot in
// the destination term. Carrying into it would conflate two amounts, so
// the case is surfaced for manual review instead.
type CarryOverConflict struct {
	StudentID string
	Purpose   string
	ToTermID  string
}

func (e *CarryOverConflict) Error() string {
	return fmt.Sprintf("carry-over conflict for student %s, purpose %q: charge already exists in term %s",
		e.StudentID, e.Purpose, e.ToTermID)
}

// ErrConcurrencyConflict is returned after a mutating operation lost a
// write race more times than the retry budget allows. Safe to retry.
var ErrConcurrencyConflict = errors.New("concurrent update conflict, retry the operation")

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
