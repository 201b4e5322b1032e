package calculator

import "github.com/sriteja123gujjari/RentalManagement/internal/models"

// SelectPeriod returns the revenue records and expenses whose period key
// equals period. Input order is preserved and the inputs are not modified.
// The returned slices are never nil.
func SelectPeriod(records []models.RevenueRecord, expenses []models.Expense, period string) ([]models.RevenueRecord, []models.Expense) {
	periodRecords := make([]models.RevenueRecord, 0)
	for _, r := range records {
		if r.Period == period {
			periodRecords = append(periodRecords, r)
		}
	}

	periodExpenses := make([]models.Expense, 0)
	for _, e := range expenses {
		if e.Period == period {
			periodExpenses = append(periodExpenses, e)
		}
	}

	return periodRecords, periodExpenses
}
