package services

import (
	"yano-school/app/models"
)

// Allocation records how much of one payment landed on one purpose.
type Allocation struct {
	Purpose       string       `json:"purpose"`
	CarriedOver   bool         `json:"carried_over"`
	Amount        models.Money `json:"amount"`
	BalanceBefore models.Money `json:"balance_before"`
	BalanceAfter  models.Money `json:"balance_after"`
}

// AllocationResult is the outcome of distributing a payment across a
// student's outstanding purposes.
type AllocationResult struct {
	Allocations []Allocation `json:"allocations"`
	Applied     models.Money `json:"applied_amount"`
	Remaining   models.Money `json:"remaining_amount"`
	Capped      bool         `json:"capped"`
}

// AllocatePayment distributes amount over the given ledger entries in
// their order, which callers must have built in allocation order:
// carried-over purposes first, then current-period purposes by ascending
// charge creation time. Each purpose absorbs at most its balance, so no
// balance can go negative and applied never exceeds the total
// outstanding. Whatever cannot be applied is reported back in Remaining,
// never dropped.
func AllocatePayment(entries []*models.LedgerEntry, amount models.Money) AllocationResult {
	result := AllocationResult{}
	left := amount

	for _, e := range entries {
		if left == 0 {
			break
		}
		if e.Balance <= 0 {
			continue
		}
		take := left.Min(e.Balance)
		result.Allocations = append(result.Allocations, Allocation{
			Purpose:       e.Purpose,
			CarriedOver:   e.CarriedOver,
			Amount:        take,
			BalanceBefore: e.Balance,
			BalanceAfter:  e.Balance - take,
		})
		result.Applied += take
		left -= take
	}

	result.Remaining = amount - result.Applied
	result.Capped = result.Remaining > 0
	return result
}
