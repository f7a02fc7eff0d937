package services

import (
	"context"
	"database/sql"

	"yano-school/app/database"
	"yano-school/app/models"
)

// ComputeStatistics folds per-student ledger entries into cohort
// collection metrics. Rates are ratios, never money: a term with nothing
// expected yields a rate of 0, not a division by zero.
func ComputeStatistics(termID string, entries []*models.LedgerEntry) *models.Statistics {
	stats := &models.Statistics{
		TermID:       termID,
		StatusCounts: map[models.LedgerStatus]int{},
	}

	chargedByStudent := make(map[string]models.Money)
	paidByStudent := make(map[string]models.Money)
	for _, e := range entries {
		stats.TotalExpected += e.TotalCharged
		stats.TotalCollected += e.TotalPaid
		stats.TotalOutstanding += e.Balance
		chargedByStudent[e.StudentID] += e.TotalCharged
		paidByStudent[e.StudentID] += e.TotalPaid
	}

	stats.StudentCount = len(chargedByStudent)
	fullyPaid := 0
	for studentID, charged := range chargedByStudent {
		status := models.DeriveStatus(charged, paidByStudent[studentID])
		stats.StatusCounts[status]++
		if status == models.StatusPaid {
			fullyPaid++
		}
	}

	if stats.TotalExpected > 0 {
		stats.CollectionRate = float64(stats.TotalCollected) / float64(stats.TotalExpected)
	}
	if stats.StudentCount > 0 {
		stats.PaymentCompletionRate = float64(fullyPaid) / float64(stats.StudentCount)
	}
	return stats
}

// GetStatistics computes collection metrics for every student billed in
// a term. Facts are loaded in one repeatable-read snapshot and folded
// fresh on every call; totals are never cached anywhere they could drift.
func GetStatistics(db *sql.DB, termID string) (*models.Statistics, error) {
	if _, err := database.GetTermByID(db, termID); err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(context.Background(), &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	charges, err := database.GetChargesByTerm(tx, termID)
	if err != nil {
		return nil, err
	}
	payments, err := database.GetPaymentsByTerm(tx, termID)
	if err != nil {
		return nil, err
	}

	return ComputeStatistics(termID, replayGrouped(charges, payments)), nil
}
