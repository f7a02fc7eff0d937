package services

import (
	"context"
	"database/sql"
	"strings"

	"yano-school/app/database"
	"yano-school/app/logger"
	"yano-school/app/models"
)

// SkippedCharge explains why one (student, purpose) pair produced no new
// charge during generation.
type SkippedCharge struct {
	StudentID  string `json:"student_id,omitempty"`
	ClassLevel string `json:"class_level"`
	Purpose    string `json:"purpose,omitempty"`
	Reason     string `json:"reason"`
}

// GenerateResult reports the outcome of one charge generation run.
type GenerateResult struct {
	Created int             `json:"created"`
	Skipped []SkippedCharge `json:"skipped"`
}

// BuildChargePlan diffs the fee structure against existing charges and
// returns the charges to create plus everything skipped with a reason.
// Malformed fee items (negative amount, blank purpose) are reported and
// do not stop the rest of the plan. existing holds "studentID/purpose"
// keys already charged in the term.
func BuildChargePlan(termID string, students []*models.Student, itemsByLevel map[string][]*models.FeeStructureItem, existing map[string]bool) ([]*models.Charge, []SkippedCharge) {
	var creates []*models.Charge
	var skipped []SkippedCharge

	reportedLevels := make(map[string]bool)
	for _, student := range students {
		items, ok := itemsByLevel[student.ClassLevel]
		if !ok || len(items) == 0 {
			if !reportedLevels[student.ClassLevel] {
				reportedLevels[student.ClassLevel] = true
				skipped = append(skipped, SkippedCharge{
					ClassLevel: student.ClassLevel,
					Reason:     "no fee structure defined for class level",
				})
			}
			continue
		}
		for _, item := range items {
			if strings.TrimSpace(item.Purpose) == "" {
				skipped = append(skipped, SkippedCharge{
					StudentID:  student.ID,
					ClassLevel: student.ClassLevel,
					Reason:     "fee item has no purpose",
				})
				continue
			}
			if item.Amount.IsNegative() {
				skipped = append(skipped, SkippedCharge{
					StudentID:  student.ID,
					ClassLevel: student.ClassLevel,
					Purpose:    item.Purpose,
					Reason:     "fee item amount is negative",
				})
				continue
			}
			if existing[student.ID+"/"+item.Purpose] {
				skipped = append(skipped, SkippedCharge{
					StudentID:  student.ID,
					ClassLevel: student.ClassLevel,
					Purpose:    item.Purpose,
					Reason:     "charge already exists",
				})
				continue
			}
			creates = append(creates, &models.Charge{
				StudentID: student.ID,
				TermID:    termID,
				Purpose:   item.Purpose,
				Amount:    item.Amount,
			})
		}
	}
	return creates, skipped
}

// GenerateCharges expands the fee structure of a term into one charge per
// (active student, purpose). Safe to re-run: the second pass creates
// nothing because every key already exists. The context aborts the batch
// between writes; charges already committed stay committed.
func GenerateCharges(ctx context.Context, db *sql.DB, termID string) (*GenerateResult, error) {
	if _, err := database.GetTermByID(db, termID); err != nil {
		return nil, err
	}

	students, err := database.GetActiveStudents(db)
	if err != nil {
		return nil, err
	}

	itemsByLevel := make(map[string][]*models.FeeStructureItem)
	for _, student := range students {
		if _, seen := itemsByLevel[student.ClassLevel]; seen {
			continue
		}
		items, err := database.GetFeeItems(db, student.ClassLevel, termID)
		if err != nil {
			if models.IsNotFound(err) {
				// Nothing billable for this level; the plan reports it.
				itemsByLevel[student.ClassLevel] = nil
				continue
			}
			return nil, err
		}
		itemsByLevel[student.ClassLevel] = items
	}

	existing, err := database.ChargeKeysForTerm(db, termID)
	if err != nil {
		return nil, err
	}

	creates, skipped := BuildChargePlan(termID, students, itemsByLevel, existing)

	result := &GenerateResult{Skipped: skipped}
	for _, charge := range creates {
		if err := ctx.Err(); err != nil {
			logger.Log.Warnf("charge generation aborted after %d of %d charges: %v",
				result.Created, len(creates), err)
			return result, err
		}
		created, err := database.InsertCharge(db, charge)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
		} else {
			// Lost the key to a concurrent run; equivalent to skipped.
			result.Skipped = append(result.Skipped, SkippedCharge{
				StudentID: charge.StudentID,
				Purpose:   charge.Purpose,
				Reason:    "charge already exists",
			})
		}
	}
	if result.Skipped == nil {
		result.Skipped = []SkippedCharge{}
	}

	logger.Log.Infof("charge generation for term %s: created=%d skipped=%d",
		termID, result.Created, len(result.Skipped))
	return result, nil
}
