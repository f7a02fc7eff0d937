package services

import (
	"testing"

	"yano-school/app/models"
)

func entry(purpose string, carried bool, charged, paid models.Money) *models.LedgerEntry {
	return &models.LedgerEntry{
		Purpose:      purpose,
		CarriedOver:  carried,
		TotalCharged: charged,
		TotalPaid:    paid,
		Balance:      charged - paid,
		Status:       models.DeriveStatus(charged, paid),
	}
}

func TestAllocatePayment(t *testing.T) {
	tests := []struct {
		name          string
		entries       []*models.LedgerEntry
		amount        models.Money
		wantApplied   models.Money
		wantRemaining models.Money
		wantCapped    bool
		wantOrder     []string
	}{
		{
			name:          "exact single purpose",
			entries:       []*models.LedgerEntry{entry("Tuition", false, 58000, 0)},
			amount:        58000,
			wantApplied:   58000,
			wantRemaining: 0,
			wantCapped:    false,
			wantOrder:     []string{"Tuition"},
		},
		{
			name:          "partial payment",
			entries:       []*models.LedgerEntry{entry("Tuition", false, 58000, 0)},
			amount:        45000,
			wantApplied:   45000,
			wantRemaining: 0,
			wantCapped:    false,
			wantOrder:     []string{"Tuition"},
		},
		{
			name:          "overpayment is capped",
			entries:       []*models.LedgerEntry{entry("Tuition", false, 58000, 45000)},
			amount:        20000,
			wantApplied:   13000,
			wantRemaining: 7000,
			wantCapped:    true,
			wantOrder:     []string{"Tuition"},
		},
		{
			name: "carried purpose absorbs first",
			entries: []*models.LedgerEntry{
				entry("Tuition", true, 13000, 0),
				entry("Tuition Current", false, 60000, 0),
			},
			amount:        20000,
			wantApplied:   20000,
			wantRemaining: 0,
			wantCapped:    false,
			wantOrder:     []string{"Tuition", "Tuition Current"},
		},
		{
			name: "skips settled purposes",
			entries: []*models.LedgerEntry{
				entry("Tuition", false, 58000, 58000),
				entry("Library", false, 5000, 0),
			},
			amount:        5000,
			wantApplied:   5000,
			wantRemaining: 0,
			wantCapped:    false,
			wantOrder:     []string{"Library"},
		},
		{
			name:          "nothing outstanding",
			entries:       []*models.LedgerEntry{entry("Tuition", false, 58000, 58000)},
			amount:        10000,
			wantApplied:   0,
			wantRemaining: 10000,
			wantCapped:    true,
			wantOrder:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocatePayment(tt.entries, tt.amount)
			if got.Applied != tt.wantApplied {
				t.Errorf("Applied = %d, want %d", got.Applied, tt.wantApplied)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %d, want %d", got.Remaining, tt.wantRemaining)
			}
			if got.Capped != tt.wantCapped {
				t.Errorf("Capped = %v, want %v", got.Capped, tt.wantCapped)
			}
			if len(got.Allocations) != len(tt.wantOrder) {
				t.Fatalf("got %d allocations, want %d", len(got.Allocations), len(tt.wantOrder))
			}
			for i, purpose := range tt.wantOrder {
				if got.Allocations[i].Purpose != purpose {
					t.Errorf("allocation %d went to %q, want %q", i, got.Allocations[i].Purpose, purpose)
				}
			}
		})
	}
}

func TestAllocatePaymentNeverOverApplies(t *testing.T) {
	entries := []*models.LedgerEntry{
		entry("Tuition", false, 58000, 0),
		entry("Library", false, 5000, 0),
	}
	got := AllocatePayment(entries, 100000)

	if got.Applied != 63000 {
		t.Errorf("Applied = %d, want 63000", got.Applied)
	}
	if got.Remaining != 37000 {
		t.Errorf("Remaining = %d, want 37000", got.Remaining)
	}
	if !got.Capped {
		t.Error("expected capped = true")
	}
	for _, a := range got.Allocations {
		if a.BalanceAfter < 0 {
			t.Errorf("purpose %q balance went negative: %d", a.Purpose, a.BalanceAfter)
		}
	}
}
