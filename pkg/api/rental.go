// Package api holds the request and response messages of the rental.v1 RPC
// services. Messages travel as JSON; amounts are decimal strings.
package api

import "github.com/shopspring/decimal"

type Unit struct {
	Id        string          `json:"id"`
	Name      string          `json:"name"`
	BaseRent  decimal.Decimal `json:"base_rent"`
	CreatedAt int64           `json:"created_at"`
}

type RevenueRecord struct {
	UnitId      string          `json:"unit_id"`
	Period      string          `json:"period"`
	Status      string          `json:"status"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	CollectedBy string          `json:"collected_by,omitempty"`
	UpdatedAt   int64           `json:"updated_at"`
}

type Expense struct {
	Id          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"`
	PaidBy      string          `json:"paid_by"`
	CreatedAt   int64           `json:"created_at"`
}

type OwnerBalance struct {
	Owner   string          `json:"owner"`
	Holding decimal.Decimal `json:"holding"`
	Balance decimal.Decimal `json:"balance"`
}

type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodSummary is the computed ledger of one period.
type PeriodSummary struct {
	Period        string          `json:"period"`
	Label         string          `json:"label"`
	Received      decimal.Decimal `json:"received"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Net           decimal.Decimal `json:"net"`
	EqualShare    decimal.Decimal `json:"equal_share"`
	Pool          decimal.Decimal `json:"pool"`
	Owners        []*OwnerBalance `json:"owners"`
	Transfers     []*Transfer     `json:"transfers"`
}

// UnitRow is one unit's payment line in a period report. Units without a
// record for the period are reported Unpaid.
type UnitRow struct {
	UnitId      string          `json:"unit_id"`
	Name        string          `json:"name"`
	BaseRent    decimal.Decimal `json:"base_rent"`
	Status      string          `json:"status"`
	CollectedBy string          `json:"collected_by,omitempty"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
}

type ListOwnersRequest struct{}

type ListOwnersResponse struct {
	Owners   []string `json:"owners"`
	Currency string   `json:"currency"`
}

type CreateUnitRequest struct {
	Name string `json:"name"`
	// BaseRent is parsed leniently: "55000", "55000.50" and "55000,50" are accepted.
	BaseRent string `json:"base_rent"`
}

type CreateUnitResponse struct {
	Unit *Unit `json:"unit"`
}

type ListUnitsRequest struct{}

type ListUnitsResponse struct {
	Units []*Unit `json:"units"`
}

type DeleteUnitRequest struct {
	UnitId string `json:"unit_id"`
}

type DeleteUnitResponse struct{}

type SeedDefaultUnitsRequest struct{}

type SeedDefaultUnitsResponse struct {
	// Units lists the units created; defaults whose name already exists are skipped.
	Units []*Unit `json:"units"`
}

type ToggleRentStatusRequest struct {
	UnitId string `json:"unit_id"`
	Period string `json:"period"`
}

type ToggleRentStatusResponse struct {
	Record *RevenueRecord `json:"record"`
}

type SetCollectorRequest struct {
	UnitId string `json:"unit_id"`
	Period string `json:"period"`
	Owner  string `json:"owner"`
}

type SetCollectorResponse struct {
	Record *RevenueRecord `json:"record"`
}

type AddExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Period      string `json:"period"`
	// PaidBy is an owner name; empty means the shared pool.
	PaidBy string `json:"paid_by,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type GetPeriodSummaryRequest struct {
	Period string `json:"period"`
}

type GetPeriodSummaryResponse struct {
	Summary  *PeriodSummary `json:"summary"`
	Units    []*UnitRow     `json:"units"`
	Expenses []*Expense     `json:"expenses"`
}
