package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

// OwnerBalance is one owner's position for a period.
type OwnerBalance struct {
	Owner models.Owner

	// Holding is the owner's raw cash position: rent they collected minus
	// expenses they paid.
	Holding decimal.Decimal

	// Balance is the holding equalized against the split. Positive = owes
	// money into the group, negative = is owed.
	Balance decimal.Decimal
}

// PeriodBalances is the output of CalculateBalances.
type PeriodBalances struct {
	Received      decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	EqualShare    decimal.Decimal

	// Pool is the cash not attributable to a single owner: rent with no
	// known collector minus expenses paid from the shared pool.
	Pool decimal.Decimal

	// Owners holds one entry per owner, in enumeration order.
	Owners []OwnerBalance
}

// Lookup returns the balance entry for owner.
func (p PeriodBalances) Lookup(owner models.Owner) (OwnerBalance, bool) {
	for _, b := range p.Owners {
		if b.Owner == owner {
			return b, true
		}
	}
	return OwnerBalance{}, false
}

// CalculateBalances reduces one period's records to per-owner positions.
//
// Algorithm:
//   - received = Σ collected over Paid records; expenses = Σ expense amounts
//   - net = received - expenses, equal share = net / N
//   - holding[o] = collected by o - paid by o
//   - pool = unattributed collections - unattributed expenses, shared equally
//   - balance[o] = holding[o] + pool/N - equal share
//
// Balances sum to zero. Records from other periods must already be filtered
// out (see SelectPeriod).
func CalculateBalances(records []models.RevenueRecord, expenses []models.Expense, owners models.OwnerSet) PeriodBalances {
	holdings := make(map[models.Owner]decimal.Decimal, owners.Len())
	received := decimal.Zero
	totalExpenses := decimal.Zero
	pool := decimal.Zero

	for _, r := range records {
		if !r.IsPaid() {
			continue
		}
		received = received.Add(r.AmountPaid)
		if owners.Contains(r.CollectedBy) {
			holdings[r.CollectedBy] = holdings[r.CollectedBy].Add(r.AmountPaid)
		} else {
			pool = pool.Add(r.AmountPaid)
		}
	}

	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		if owners.Contains(e.PaidBy) {
			holdings[e.PaidBy] = holdings[e.PaidBy].Sub(e.Amount)
		} else {
			pool = pool.Sub(e.Amount)
		}
	}

	net := received.Sub(totalExpenses)
	result := PeriodBalances{
		Received:      received,
		TotalExpenses: totalExpenses,
		Net:           net,
		EqualShare:    decimal.Zero,
		Pool:          pool,
		Owners:        make([]OwnerBalance, 0, owners.Len()),
	}
	if owners.Len() == 0 {
		return result
	}

	n := decimal.NewFromInt(int64(owners.Len()))
	result.EqualShare = net.Div(n)
	poolShare := pool.Div(n)

	for _, o := range owners.List() {
		holding := holdings[o]
		result.Owners = append(result.Owners, OwnerBalance{
			Owner:   o,
			Holding: holding,
			Balance: holding.Add(poolShare).Sub(result.EqualShare),
		})
	}

	return result
}
