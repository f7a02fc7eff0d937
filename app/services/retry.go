package services

import (
	"errors"

	"github.com/lib/pq"

	"yano-school/app/logger"
	"yano-school/app/models"
)

const maxWriteAttempts = 3

// isRetryable reports whether err is a transient conflict worth another
// attempt: PostgreSQL serialization failure (40001) or deadlock (40P01).
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// withRetry runs fn up to maxWriteAttempts times, retrying only lost
// write races. Anything else surfaces immediately; exhausting the budget
// surfaces ErrConcurrencyConflict so the caller knows a retry is safe.
func withRetry(op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		err = fn()
		if err == nil || !isRetryable(err) {
			return err
		}
		logger.Log.Warnf("%s lost a write race (attempt %d/%d): %v", op, attempt, maxWriteAttempts, err)
	}
	return models.ErrConcurrencyConflict
}
