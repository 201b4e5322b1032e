package service

import (
	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/period"
	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
)

func toAPIUnit(u *models.Unit) *api.Unit {
	return &api.Unit{
		Id:        u.ID,
		Name:      u.Name,
		BaseRent:  u.BaseRent,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIRecord(r models.RevenueRecord) *api.RevenueRecord {
	return &api.RevenueRecord{
		UnitId:      r.UnitID,
		Period:      r.Period,
		Status:      string(r.Status),
		AmountPaid:  r.AmountPaid,
		CollectedBy: string(r.CollectedBy),
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAPIExpense(e models.Expense) *api.Expense {
	return &api.Expense{
		Id:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Period:      e.Period,
		PaidBy:      string(e.PaidBy),
		CreatedAt:   e.CreatedAt,
	}
}

func toAPISummary(s calculator.PeriodSummary) *api.PeriodSummary {
	owners := make([]*api.OwnerBalance, len(s.Owners))
	for i, b := range s.Owners {
		owners[i] = &api.OwnerBalance{
			Owner:   string(b.Owner),
			Holding: b.Holding,
			Balance: b.Balance,
		}
	}

	transfers := make([]*api.Transfer, len(s.Transfers))
	for i, t := range s.Transfers {
		transfers[i] = &api.Transfer{
			From:   string(t.From),
			To:     string(t.To),
			Amount: t.Amount,
		}
	}

	return &api.PeriodSummary{
		Period:        s.Period,
		Label:         period.Label(s.Period),
		Received:      s.Received,
		TotalExpenses: s.TotalExpenses,
		Net:           s.Net,
		EqualShare:    s.EqualShare,
		Pool:          s.Pool,
		Owners:        owners,
		Transfers:     transfers,
	}
}

// unitRows lists every unit with its record for the period. Units without a
// record are reported Unpaid.
func unitRows(units []*models.Unit, records []models.RevenueRecord) []*api.UnitRow {
	byUnit := make(map[string]models.RevenueRecord, len(records))
	for _, r := range records {
		byUnit[r.UnitID] = r
	}

	rows := make([]*api.UnitRow, len(units))
	for i, u := range units {
		row := &api.UnitRow{
			UnitId:   u.ID,
			Name:     u.Name,
			BaseRent: u.BaseRent,
			Status:   string(models.StatusUnpaid),
		}
		if r, ok := byUnit[u.ID]; ok {
			row.Status = string(r.Status)
			row.CollectedBy = string(r.CollectedBy)
			row.AmountPaid = r.AmountPaid
		}
		rows[i] = row
	}
	return rows
}
