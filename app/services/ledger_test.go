package services

import (
	"testing"
	"time"

	"yano-school/app/models"
)

var chargeSeq time.Time = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func charge(purpose string, amount models.Money, carried bool) *models.Charge {
	chargeSeq = chargeSeq.Add(time.Minute)
	return &models.Charge{
		StudentID:   "student-1",
		TermID:      "term-1",
		Purpose:     purpose,
		Amount:      amount,
		CarriedOver: carried,
		CreatedAt:   chargeSeq,
	}
}

func payment(amount models.Money, voided bool) *models.Payment {
	p := &models.Payment{
		StudentID:  "student-1",
		TermID:     "term-1",
		Amount:     amount,
		Method:     models.MethodCash,
		RecordedAt: time.Now(),
	}
	if voided {
		now := time.Now()
		p.VoidedAt = &now
	}
	return p
}

// Mirrors the running example: a 58000 tuition charge, a 45000 payment,
// then a second payment that clears the balance.
func TestReplayLedgerScenario(t *testing.T) {
	charges := []*models.Charge{charge("Tuition", 58000, false)}

	entries := ReplayLedger(charges, []*models.Payment{payment(45000, false)})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.TotalCharged != 58000 || e.TotalPaid != 45000 || e.Balance != 13000 {
		t.Errorf("after first payment: charged=%d paid=%d balance=%d, want 58000/45000/13000",
			e.TotalCharged, e.TotalPaid, e.Balance)
	}
	if e.Status != models.StatusOutstanding {
		t.Errorf("Status = %q, want %q", e.Status, models.StatusOutstanding)
	}

	entries = ReplayLedger(charges, []*models.Payment{payment(45000, false), payment(13000, false)})
	e = entries[0]
	if e.Balance != 0 {
		t.Errorf("Balance = %d, want 0", e.Balance)
	}
	if e.Status != models.StatusPaid {
		t.Errorf("Status = %q, want %q", e.Status, models.StatusPaid)
	}
}

func TestReplayLedger(t *testing.T) {
	tests := []struct {
		name     string
		charges  []*models.Charge
		payments []*models.Payment
		want     map[string]models.LedgerStatus
	}{
		{
			name:    "no payments is pending",
			charges: []*models.Charge{charge("Tuition", 58000, false)},
			want:    map[string]models.LedgerStatus{"Tuition": models.StatusPending},
		},
		{
			name: "payment fills carried purpose before current",
			charges: []*models.Charge{
				charge("Tuition Arrears", 13000, true),
				charge("Tuition", 60000, false),
			},
			payments: []*models.Payment{payment(13000, false)},
			want: map[string]models.LedgerStatus{
				"Tuition Arrears": models.StatusPaid,
				"Tuition":         models.StatusPending,
			},
		},
		{
			name:     "voided payments do not count",
			charges:  []*models.Charge{charge("Tuition", 58000, false)},
			payments: []*models.Payment{payment(58000, true)},
			want:     map[string]models.LedgerStatus{"Tuition": models.StatusPending},
		},
		{
			name: "payments spill across purposes in order",
			charges: []*models.Charge{
				charge("Tuition", 58000, false),
				charge("Library", 5000, false),
			},
			payments: []*models.Payment{payment(60000, false)},
			want: map[string]models.LedgerStatus{
				"Tuition": models.StatusPaid,
				"Library": models.StatusOutstanding,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ReplayLedger(tt.charges, tt.payments)
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.want))
			}
			for _, e := range entries {
				if e.Balance < 0 {
					t.Errorf("purpose %q: balance %d is negative", e.Purpose, e.Balance)
				}
				if e.TotalPaid > e.TotalCharged {
					t.Errorf("purpose %q: paid %d exceeds charged %d", e.Purpose, e.TotalPaid, e.TotalCharged)
				}
				want, ok := tt.want[e.Purpose]
				if !ok {
					t.Errorf("unexpected purpose %q", e.Purpose)
					continue
				}
				if e.Status != want {
					t.Errorf("purpose %q: status = %q, want %q", e.Purpose, e.Status, want)
				}
			}
		})
	}
}

func TestOutstandingBalance(t *testing.T) {
	entries := []*models.LedgerEntry{
		entry("Tuition", false, 58000, 45000),
		entry("Library", false, 5000, 0),
	}
	if got := OutstandingBalance(entries); got != 18000 {
		t.Errorf("OutstandingBalance = %d, want 18000", got)
	}
	if got := OutstandingBalance(nil); got != 0 {
		t.Errorf("OutstandingBalance(nil) = %d, want 0", got)
	}
}

func TestReplayGroupedSplitsStudentsAndTerms(t *testing.T) {
	charges := []*models.Charge{
		{StudentID: "s1", TermID: "t1", Purpose: "Tuition", Amount: 58000},
		{StudentID: "s1", TermID: "t2", Purpose: "Tuition", Amount: 60000},
		{StudentID: "s2", TermID: "t1", Purpose: "Tuition", Amount: 58000},
	}
	payments := []*models.Payment{
		{StudentID: "s1", TermID: "t1", Amount: 58000},
	}

	entries := replayGrouped(charges, payments)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	byKey := make(map[string]*models.LedgerEntry)
	for _, e := range entries {
		byKey[e.StudentID+"/"+e.TermID] = e
	}
	if byKey["s1/t1"].Status != models.StatusPaid {
		t.Errorf("s1/t1 status = %q, want Paid", byKey["s1/t1"].Status)
	}
	if byKey["s1/t2"].Status != models.StatusPending {
		t.Errorf("s1/t2 status = %q, want Pending: payment must not leak across terms", byKey["s1/t2"].Status)
	}
	if byKey["s2/t1"].Status != models.StatusPending {
		t.Errorf("s2/t1 status = %q, want Pending: payment must not leak across students", byKey["s2/t1"].Status)
	}
}
