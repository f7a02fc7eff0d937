package services

import (
	"context"
	"database/sql"

	"yano-school/app/database"
	"yano-school/app/models"
)

// ReplayLedger derives a student's ledger for one term from immutable
// facts alone: charges in allocation order and payments in recorded
// order. Each non-void payment is re-allocated exactly the way the
// payment processor allocated it when the money arrived, so the
// projection is reproducible from the two tables with nothing else
// stored. Voided payments contribute nothing.
func ReplayLedger(charges []*models.Charge, payments []*models.Payment) []*models.LedgerEntry {
	if len(charges) == 0 {
		return nil
	}

	entries := make([]*models.LedgerEntry, 0, len(charges))
	byPurpose := make(map[string]*models.LedgerEntry, len(charges))
	for _, c := range charges {
		e, ok := byPurpose[c.Purpose]
		if !ok {
			e = &models.LedgerEntry{
				StudentID:   c.StudentID,
				TermID:      c.TermID,
				Purpose:     c.Purpose,
				CarriedOver: c.CarriedOver,
			}
			byPurpose[c.Purpose] = e
			entries = append(entries, e)
		}
		e.TotalCharged += c.Amount
		e.Balance += c.Amount
	}

	for _, p := range payments {
		if p.Voided() {
			continue
		}
		left := p.Amount
		for _, e := range entries {
			if left == 0 {
				break
			}
			if e.Balance <= 0 {
				continue
			}
			take := left.Min(e.Balance)
			e.TotalPaid += take
			e.Balance -= take
			left -= take
		}
	}

	for _, e := range entries {
		e.Status = models.DeriveStatus(e.TotalCharged, e.TotalPaid)
	}
	return entries
}

// OutstandingBalance sums the balances of a set of ledger entries.
func OutstandingBalance(entries []*models.LedgerEntry) models.Money {
	var total models.Money
	for _, e := range entries {
		total += e.Balance
	}
	return total
}

// GetLedger returns ledger entries filtered by student and/or term. At
// least one filter is required. Charges and payments are loaded inside
// one repeatable-read transaction so a payment committing mid-read can
// never show up half applied.
func GetLedger(db *sql.DB, studentID, termID string) ([]*models.LedgerEntry, error) {
	if studentID == "" && termID == "" {
		return nil, &models.ValidationError{Field: "student_id/term_id", Reason: "at least one filter is required"}
	}

	tx, err := db.BeginTx(context.Background(), &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var charges []*models.Charge
	var payments []*models.Payment
	switch {
	case studentID != "" && termID != "":
		charges, err = database.GetChargesForStudentTerm(tx, studentID, termID)
		if err != nil {
			return nil, err
		}
		payments, err = database.GetPaymentsForStudentTerm(tx, studentID, termID)
	case studentID != "":
		charges, err = database.GetChargesForStudent(tx, studentID)
		if err != nil {
			return nil, err
		}
		payments, err = database.GetPaymentsForStudent(tx, studentID)
	default:
		charges, err = database.GetChargesByTerm(tx, termID)
		if err != nil {
			return nil, err
		}
		payments, err = database.GetPaymentsByTerm(tx, termID)
	}
	if err != nil {
		return nil, err
	}

	entries := replayGrouped(charges, payments)
	if entries == nil {
		entries = []*models.LedgerEntry{}
	}
	return entries, nil
}

// replayGrouped splits charges and payments by (student, term) and
// replays each group independently. Inputs arrive ordered by group, with
// allocation order inside each charge group and recorded order inside
// each payment group.
func replayGrouped(charges []*models.Charge, payments []*models.Payment) []*models.LedgerEntry {
	type key struct{ studentID, termID string }

	paymentsByKey := make(map[key][]*models.Payment)
	for _, p := range payments {
		k := key{p.StudentID, p.TermID}
		paymentsByKey[k] = append(paymentsByKey[k], p)
	}

	var entries []*models.LedgerEntry
	var group []*models.Charge
	flush := func() {
		if len(group) == 0 {
			return
		}
		k := key{group[0].StudentID, group[0].TermID}
		entries = append(entries, ReplayLedger(group, paymentsByKey[k])...)
		group = group[:0]
	}
	for _, c := range charges {
		if len(group) > 0 && (group[0].StudentID != c.StudentID || group[0].TermID != c.TermID) {
			flush()
		}
		group = append(group, c)
	}
	flush()
	return entries
}
