package calculator

import "github.com/sriteja123gujjari/RentalManagement/internal/models"

// PeriodSummary is everything derived for one period.
type PeriodSummary struct {
	Period string
	PeriodBalances
	Transfers []Transfer
}

// Summarize runs the full pipeline for one period over the complete record
// collections: select the period, compute balances, resolve settlement.
// Running it twice on the same inputs yields identical output.
func Summarize(records []models.RevenueRecord, expenses []models.Expense, owners models.OwnerSet, period string) PeriodSummary {
	periodRecords, periodExpenses := SelectPeriod(records, expenses, period)
	balances := CalculateBalances(periodRecords, periodExpenses, owners)

	return PeriodSummary{
		Period:         period,
		PeriodBalances: balances,
		Transfers:      SimplifyDebts(balances.Owners),
	}
}
