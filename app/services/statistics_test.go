package services

import (
	"testing"

	"yano-school/app/models"
)

func studentEntry(studentID string, charged, paid models.Money) *models.LedgerEntry {
	return &models.LedgerEntry{
		StudentID:    studentID,
		TermID:       "term-1",
		Purpose:      "Tuition",
		TotalCharged: charged,
		TotalPaid:    paid,
		Balance:      charged - paid,
		Status:       models.DeriveStatus(charged, paid),
	}
}

func TestComputeStatistics(t *testing.T) {
	t.Run("half collected", func(t *testing.T) {
		entries := []*models.LedgerEntry{
			studentEntry("s1", 58000, 58000),
			studentEntry("s2", 58000, 0),
		}
		stats := ComputeStatistics("term-1", entries)

		if stats.TotalExpected != 116000 {
			t.Errorf("TotalExpected = %d, want 116000", stats.TotalExpected)
		}
		if stats.TotalCollected != 58000 {
			t.Errorf("TotalCollected = %d, want 58000", stats.TotalCollected)
		}
		if stats.TotalOutstanding != 58000 {
			t.Errorf("TotalOutstanding = %d, want 58000", stats.TotalOutstanding)
		}
		if stats.CollectionRate != 0.5 {
			t.Errorf("CollectionRate = %v, want 0.5", stats.CollectionRate)
		}
		if stats.PaymentCompletionRate != 0.5 {
			t.Errorf("PaymentCompletionRate = %v, want 0.5", stats.PaymentCompletionRate)
		}
		if stats.StatusCounts[models.StatusPaid] != 1 || stats.StatusCounts[models.StatusPending] != 1 {
			t.Errorf("StatusCounts = %v, want one Paid and one Pending", stats.StatusCounts)
		}
	})

	t.Run("empty term never divides by zero", func(t *testing.T) {
		stats := ComputeStatistics("term-1", nil)
		if stats.CollectionRate != 0 {
			t.Errorf("CollectionRate = %v, want 0", stats.CollectionRate)
		}
		if stats.PaymentCompletionRate != 0 {
			t.Errorf("PaymentCompletionRate = %v, want 0", stats.PaymentCompletionRate)
		}
		if stats.StudentCount != 0 {
			t.Errorf("StudentCount = %d, want 0", stats.StudentCount)
		}
	})

	t.Run("multiple purposes roll up per student", func(t *testing.T) {
		entries := []*models.LedgerEntry{
			studentEntry("s1", 58000, 58000),
			{StudentID: "s1", TermID: "term-1", Purpose: "Library", TotalCharged: 5000, TotalPaid: 0, Balance: 5000, Status: models.StatusPending},
		}
		stats := ComputeStatistics("term-1", entries)

		if stats.StudentCount != 1 {
			t.Errorf("StudentCount = %d, want 1", stats.StudentCount)
		}
		// 58000 paid of 63000 charged: the student is outstanding, not paid.
		if stats.StatusCounts[models.StatusOutstanding] != 1 {
			t.Errorf("StatusCounts = %v, want one Outstanding student", stats.StatusCounts)
		}
		if stats.PaymentCompletionRate != 0 {
			t.Errorf("PaymentCompletionRate = %v, want 0", stats.PaymentCompletionRate)
		}
	})
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		charged models.Money
		paid    models.Money
		want    models.LedgerStatus
	}{
		{"nothing paid", 58000, 0, models.StatusPending},
		{"partially paid", 58000, 45000, models.StatusOutstanding},
		{"fully paid", 58000, 58000, models.StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := models.DeriveStatus(tt.charged, tt.paid); got != tt.want {
				t.Errorf("DeriveStatus(%d, %d) = %q, want %q", tt.charged, tt.paid, got, tt.want)
			}
		})
	}
}
