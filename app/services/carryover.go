package services

import (
	"context"
	"database/sql"

	"yano-school/app/database"
	"yano-school/app/logger"
	"yano-school/app/models"
)

// CarryOverResult reports one carry-over batch. Conflicts are collected
// per student and returned next to the successes; one student's conflict
// never aborts the rest of the batch.
type CarryOverResult struct {
	Carried     int                         `json:"carried"`
	TotalAmount models.Money                `json:"total_amount"`
	Skipped     int                         `json:"skipped"`
	Conflicts   []*models.CarryOverConflict `json:"conflicts"`
}

// carryItem is one balance the planner decided to forward.
type carryItem struct {
	Purpose string
	Amount  models.Money
}

// PlanCarryOver decides, for one student, which balances move from the
// source term into the destination term. A purpose is forwarded when its
// balance is positive, it has not been carried out of the source term
// before (alreadyCarried), and the destination slot is free. A
// destination charge that is itself a carried charge means a previous run
// already did the work: skip. A regular destination charge means the
// amounts would be conflated: conflict, for manual review.
func PlanCarryOver(studentID, toTermID string, entries []*models.LedgerEntry, alreadyCarried map[string]bool, toCharges []*models.Charge) ([]carryItem, []*models.CarryOverConflict, int) {
	toByPurpose := make(map[string]*models.Charge, len(toCharges))
	for _, c := range toCharges {
		toByPurpose[c.Purpose] = c
	}

	var items []carryItem
	var conflicts []*models.CarryOverConflict
	skipped := 0

	for _, e := range entries {
		if e.Balance <= 0 {
			continue
		}
		if alreadyCarried[e.Purpose] {
			skipped++
			continue
		}
		if existing, ok := toByPurpose[e.Purpose]; ok {
			if existing.CarriedOver {
				skipped++
			} else {
				conflicts = append(conflicts, &models.CarryOverConflict{
					StudentID: studentID,
					Purpose:   e.Purpose,
					ToTermID:  toTermID,
				})
			}
			continue
		}
		items = append(items, carryItem{Purpose: e.Purpose, Amount: e.Balance})
	}
	return items, conflicts, skipped
}

// studentCarryOutcome is what one student's transaction produced.
type studentCarryOutcome struct {
	carried   int
	total     models.Money
	skipped   int
	conflicts []*models.CarryOverConflict
}

// CarryOver forwards unresolved balances from one term into new charges
// in a later term for the given students. Each student runs in their own
// transaction, so a conflict or failure for one student leaves the rest
// of the batch untouched. The context aborts between students without
// rolling back students already committed.
func CarryOver(ctx context.Context, db *sql.DB, fromTermID, toTermID string, studentIDs []string) (*CarryOverResult, error) {
	fromTerm, err := database.GetTermByID(db, fromTermID)
	if err != nil {
		return nil, err
	}
	toTerm, err := database.GetTermByID(db, toTermID)
	if err != nil {
		return nil, err
	}
	if toTerm.Ordinal <= fromTerm.Ordinal {
		return nil, &models.ValidationError{Field: "to_term_id", Reason: "destination term must come after the source term"}
	}
	if len(studentIDs) == 0 {
		// No explicit selection means every student billed in the
		// source term.
		studentIDs, err = database.StudentIDsWithCharges(db, fromTermID)
		if err != nil {
			return nil, err
		}
	}

	result := &CarryOverResult{Conflicts: []*models.CarryOverConflict{}}
	for _, studentID := range studentIDs {
		if err := ctx.Err(); err != nil {
			logger.Log.Warnf("carry-over aborted after %d charges: %v", result.Carried, err)
			return result, err
		}

		var outcome studentCarryOutcome
		err := withRetry("carry over", func() error {
			outcome = studentCarryOutcome{}
			return carryOverStudent(db, studentID, fromTermID, toTermID, &outcome)
		})
		if err != nil {
			return result, err
		}
		result.Carried += outcome.carried
		result.TotalAmount += outcome.total
		result.Skipped += outcome.skipped
		result.Conflicts = append(result.Conflicts, outcome.conflicts...)
	}

	logger.Log.Infof("carry-over %s -> %s: carried=%d total=%d skipped=%d conflicts=%d",
		fromTermID, toTermID, result.Carried, int64(result.TotalAmount), result.Skipped, len(result.Conflicts))
	return result, nil
}

func carryOverStudent(db *sql.DB, studentID, fromTermID, toTermID string, outcome *studentCarryOutcome) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The source charges are locked so a payment landing mid-carry
	// cannot change the balance being forwarded.
	charges, err := database.LockChargesForStudentTerm(tx, studentID, fromTermID)
	if err != nil {
		return err
	}
	if len(charges) == 0 {
		return tx.Commit()
	}
	payments, err := database.GetPaymentsForStudentTerm(tx, studentID, fromTermID)
	if err != nil {
		return err
	}
	alreadyCarried, err := database.CarriedPurposes(tx, studentID, fromTermID)
	if err != nil {
		return err
	}
	toCharges, err := database.GetChargesForStudentTerm(tx, studentID, toTermID)
	if err != nil {
		return err
	}

	entries := ReplayLedger(charges, payments)
	items, conflicts, skipped := PlanCarryOver(studentID, toTermID, entries, alreadyCarried, toCharges)
	outcome.conflicts = conflicts
	outcome.skipped = skipped

	for _, item := range items {
		created, err := database.InsertCarryOver(tx, &models.CarryOverRecord{
			StudentID:  studentID,
			FromTermID: fromTermID,
			ToTermID:   toTermID,
			Purpose:    item.Purpose,
			Amount:     item.Amount,
		})
		if err != nil {
			return err
		}
		if !created {
			// A concurrent run carried this purpose first.
			outcome.skipped++
			continue
		}
		chargeCreated, err := database.InsertCharge(tx, &models.Charge{
			StudentID:   studentID,
			TermID:      toTermID,
			Purpose:     item.Purpose,
			Amount:      item.Amount,
			CarriedOver: true,
		})
		if err != nil {
			return err
		}
		if !chargeCreated {
			// A regular charge appeared in the destination slot after
			// planning; drop this student's inserts and surface the
			// conflict instead.
			outcome.carried = 0
			outcome.total = 0
			outcome.conflicts = append(outcome.conflicts, &models.CarryOverConflict{
				StudentID: studentID,
				Purpose:   item.Purpose,
				ToTermID:  toTermID,
			})
			tx.Rollback()
			return nil
		}
		outcome.carried++
		outcome.total += item.Amount
	}

	return tx.Commit()
}
