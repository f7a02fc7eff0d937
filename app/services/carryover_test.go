package services

import (
	"testing"

	"yano-school/app/models"
)

func TestPlanCarryOver(t *testing.T) {
	tests := []struct {
		name           string
		entries        []*models.LedgerEntry
		alreadyCarried map[string]bool
		toCharges      []*models.Charge
		wantItems      int
		wantAmount     models.Money
		wantConflicts  int
		wantSkipped    int
	}{
		{
			name:       "outstanding balance is forwarded",
			entries:    []*models.LedgerEntry{entry("Tuition", false, 58000, 45000)},
			wantItems:  1,
			wantAmount: 13000,
		},
		{
			name:      "settled balance is not forwarded",
			entries:   []*models.LedgerEntry{entry("Tuition", false, 58000, 58000)},
			wantItems: 0,
		},
		{
			name:      "pending and paid mix forwards only the open one",
			entries:   []*models.LedgerEntry{entry("Tuition", false, 58000, 58000), entry("Library", false, 5000, 0)},
			wantItems: 1, wantAmount: 5000,
		},
		{
			name:           "record from earlier run blocks re-carry",
			entries:        []*models.LedgerEntry{entry("Tuition", false, 58000, 45000)},
			alreadyCarried: map[string]bool{"Tuition": true},
			wantItems:      0,
			wantSkipped:    1,
		},
		{
			name:    "carried charge in destination is a skip",
			entries: []*models.LedgerEntry{entry("Tuition", false, 58000, 45000)},
			toCharges: []*models.Charge{
				{StudentID: "s1", TermID: "t2", Purpose: "Tuition", Amount: 13000, CarriedOver: true},
			},
			wantItems:   0,
			wantSkipped: 1,
		},
		{
			name:    "regular charge in destination is a conflict",
			entries: []*models.LedgerEntry{entry("Tuition", false, 58000, 45000)},
			toCharges: []*models.Charge{
				{StudentID: "s1", TermID: "t2", Purpose: "Tuition", Amount: 60000},
			},
			wantItems:     0,
			wantConflicts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, conflicts, skipped := PlanCarryOver("s1", "t2", tt.entries, tt.alreadyCarried, tt.toCharges)
			if len(items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(items), tt.wantItems)
			}
			var total models.Money
			for _, item := range items {
				total += item.Amount
				if item.Amount <= 0 {
					t.Errorf("carry item %q has non-positive amount %d", item.Purpose, item.Amount)
				}
			}
			if tt.wantAmount != 0 && total != tt.wantAmount {
				t.Errorf("total = %d, want %d", total, tt.wantAmount)
			}
			if len(conflicts) != tt.wantConflicts {
				t.Errorf("conflicts = %d, want %d", len(conflicts), tt.wantConflicts)
			}
			if skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", skipped, tt.wantSkipped)
			}
		})
	}
}

// Running the planner on the state a previous run produced must be a
// no-op: every forwarded purpose is blocked by its carry-over record.
func TestPlanCarryOverIdempotent(t *testing.T) {
	entries := []*models.LedgerEntry{
		entry("Tuition", false, 58000, 45000),
		entry("Library", false, 5000, 0),
	}

	first, conflicts, _ := PlanCarryOver("s1", "t2", entries, nil, nil)
	if len(first) != 2 || len(conflicts) != 0 {
		t.Fatalf("first run: items=%d conflicts=%d, want 2/0", len(first), len(conflicts))
	}

	carried := make(map[string]bool)
	var toCharges []*models.Charge
	for _, item := range first {
		carried[item.Purpose] = true
		toCharges = append(toCharges, &models.Charge{
			StudentID: "s1", TermID: "t2", Purpose: item.Purpose,
			Amount: item.Amount, CarriedOver: true,
		})
	}

	second, conflicts, skipped := PlanCarryOver("s1", "t2", entries, carried, toCharges)
	if len(second) != 0 {
		t.Errorf("second run produced %d items, want 0", len(second))
	}
	if len(conflicts) != 0 {
		t.Errorf("second run produced %d conflicts, want 0", len(conflicts))
	}
	if skipped != 2 {
		t.Errorf("second run skipped %d, want 2", skipped)
	}
}
