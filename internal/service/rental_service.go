package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/events"
	"github.com/sriteja123gujjari/RentalManagement/internal/middleware"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/period"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
	"github.com/sriteja123gujjari/RentalManagement/pkg/api/apiconnect"
)

// RentalService implements the Connect RentalService.
type RentalService struct {
	apiconnect.UnimplementedRentalServiceHandler
	store        storage.Store
	owners       models.OwnerSet
	currency     string
	defaultUnits []models.Unit
	publisher    events.Publisher
}

// NewRentalService creates a RentalService. A nil publisher drops events.
func NewRentalService(store storage.Store, owners models.OwnerSet, currency string, defaultUnits []models.Unit, publisher events.Publisher) *RentalService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &RentalService{
		store:        store,
		owners:       owners,
		currency:     currency,
		defaultUnits: defaultUnits,
		publisher:    publisher,
	}
}

// notify publishes a period change. Failures are logged and never returned.
func (s *RentalService) notify(ctx context.Context, periodKey, reason string) {
	msg := events.NewPeriodChanged(periodKey, reason, string(middleware.GetOwner(ctx)))
	if err := s.publisher.PublishPeriodChanged(ctx, msg); err != nil {
		slog.Warn("Failed to publish period change", "period", periodKey, "reason", reason, "error", err)
	}
}

// ListOwners returns the configured owners.
func (s *RentalService) ListOwners(ctx context.Context, req *connect.Request[api.ListOwnersRequest]) (*connect.Response[api.ListOwnersResponse], error) {
	return connect.NewResponse(&api.ListOwnersResponse{
		Owners:   s.owners.Strings(),
		Currency: s.currency,
	}), nil
}

// CreateUnit adds a unit.
func (s *RentalService) CreateUnit(ctx context.Context, req *connect.Request[api.CreateUnitRequest]) (*connect.Response[api.CreateUnitResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("CreateUnit request received", "name", name, "base_rent", req.Msg.BaseRent)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name required"))
	}
	rent, err := calculator.ParseAmount(req.Msg.BaseRent)
	if err != nil {
		return nil, connectError(err)
	}

	unit := &models.Unit{Name: name, BaseRent: rent}
	if err := s.store.CreateUnit(ctx, unit); err != nil {
		slog.Error("CreateUnit failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Unit created", "unit_id", unit.ID, "name", unit.Name)

	return connect.NewResponse(&api.CreateUnitResponse{Unit: toAPIUnit(unit)}), nil
}

// ListUnits returns all units in creation order.
func (s *RentalService) ListUnits(ctx context.Context, req *connect.Request[api.ListUnitsRequest]) (*connect.Response[api.ListUnitsResponse], error) {
	units, err := s.store.ListUnits(ctx)
	if err != nil {
		slog.Error("ListUnits failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Unit, len(units))
	for i, u := range units {
		out[i] = toAPIUnit(u)
	}
	return connect.NewResponse(&api.ListUnitsResponse{Units: out}), nil
}

// DeleteUnit removes a unit and its revenue records.
func (s *RentalService) DeleteUnit(ctx context.Context, req *connect.Request[api.DeleteUnitRequest]) (*connect.Response[api.DeleteUnitResponse], error) {
	unitID := req.Msg.UnitId
	slog.Info("DeleteUnit request received", "unit_id", unitID)

	if unitID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("unit_id required"))
	}

	// Collect the periods the unit touched before its records go away
	records, err := s.store.ListRevenueRecords(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	var touched []string
	for _, r := range records {
		if r.UnitID == unitID {
			touched = append(touched, r.Period)
		}
	}

	if err := s.store.DeleteUnit(ctx, unitID); err != nil {
		slog.Error("DeleteUnit failed", "unit_id", unitID, "error", err)
		return nil, connectError(err)
	}

	for _, p := range touched {
		s.notify(ctx, p, events.ReasonUnitDeleted)
	}
	slog.Info("Unit deleted", "unit_id", unitID, "periods_affected", len(touched))

	return connect.NewResponse(&api.DeleteUnitResponse{}), nil
}

// SeedDefaultUnits creates the configured default units that do not exist yet,
// matching by name.
func (s *RentalService) SeedDefaultUnits(ctx context.Context, req *connect.Request[api.SeedDefaultUnitsRequest]) (*connect.Response[api.SeedDefaultUnitsResponse], error) {
	created, err := SeedUnits(ctx, s.store, s.defaultUnits)
	if err != nil {
		slog.Error("SeedDefaultUnits failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Unit, len(created))
	for i, u := range created {
		out[i] = toAPIUnit(u)
	}
	slog.Info("Default units seeded", "created", len(created))

	return connect.NewResponse(&api.SeedDefaultUnitsResponse{Units: out}), nil
}

// SeedUnits creates each of defaults whose name is not already taken.
func SeedUnits(ctx context.Context, store storage.Store, defaults []models.Unit) ([]*models.Unit, error) {
	existing, err := store.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(existing))
	for _, u := range existing {
		names[u.Name] = true
	}

	var created []*models.Unit
	for _, d := range defaults {
		if names[d.Name] {
			continue
		}
		unit := &models.Unit{Name: d.Name, BaseRent: d.BaseRent}
		if err := store.CreateUnit(ctx, unit); err != nil {
			return created, err
		}
		names[d.Name] = true
		created = append(created, unit)
	}
	return created, nil
}

// ToggleRentStatus flips a unit's payment status for a period.
func (s *RentalService) ToggleRentStatus(ctx context.Context, req *connect.Request[api.ToggleRentStatusRequest]) (*connect.Response[api.ToggleRentStatusResponse], error) {
	slog.Info("ToggleRentStatus request received", "unit_id", req.Msg.UnitId, "period", req.Msg.Period)

	if err := period.Validate(req.Msg.Period); err != nil {
		return nil, connectError(err)
	}

	record, err := s.store.ToggleRevenueStatus(ctx, req.Msg.UnitId, req.Msg.Period, s.owners)
	if err != nil {
		slog.Error("ToggleRentStatus failed", "unit_id", req.Msg.UnitId, "error", err)
		return nil, connectError(err)
	}

	s.notify(ctx, record.Period, events.ReasonRentToggled)
	slog.Info("Rent status toggled",
		"unit_id", record.UnitID,
		"period", record.Period,
		"status", record.Status,
		"collected_by", record.CollectedBy,
	)

	return connect.NewResponse(&api.ToggleRentStatusResponse{Record: toAPIRecord(record)}), nil
}

// SetCollector reassigns the collector of a paid record.
func (s *RentalService) SetCollector(ctx context.Context, req *connect.Request[api.SetCollectorRequest]) (*connect.Response[api.SetCollectorResponse], error) {
	slog.Info("SetCollector request received",
		"unit_id", req.Msg.UnitId,
		"period", req.Msg.Period,
		"owner", req.Msg.Owner,
	)

	if err := period.Validate(req.Msg.Period); err != nil {
		return nil, connectError(err)
	}

	record, err := s.store.SetCollector(ctx, req.Msg.UnitId, req.Msg.Period, models.Owner(req.Msg.Owner), s.owners)
	if err != nil {
		slog.Error("SetCollector failed", "unit_id", req.Msg.UnitId, "error", err)
		return nil, connectError(err)
	}

	s.notify(ctx, record.Period, events.ReasonCollectorSet)

	return connect.NewResponse(&api.SetCollectorResponse{Record: toAPIRecord(record)}), nil
}

// AddExpense records an expense for a period.
func (s *RentalService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	description := strings.TrimSpace(req.Msg.Description)
	slog.Info("AddExpense request received",
		"description", description,
		"amount", req.Msg.Amount,
		"period", req.Msg.Period,
		"paid_by", req.Msg.PaidBy,
	)

	if description == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("description required"))
	}
	if err := period.Validate(req.Msg.Period); err != nil {
		return nil, connectError(err)
	}
	amount, err := calculator.ParseAmount(req.Msg.Amount)
	if err != nil {
		return nil, connectError(err)
	}
	if amount.IsZero() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("amount required"))
	}

	paidBy := models.Owner(req.Msg.PaidBy)
	switch {
	case paidBy == "":
		paidBy = models.SharedPool
	case paidBy != models.SharedPool && !s.owners.Contains(paidBy):
		return nil, connectError(calculator.ErrUnknownOwner)
	}

	expense := &models.Expense{
		Description: description,
		Amount:      amount,
		Period:      req.Msg.Period,
		PaidBy:      paidBy,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, connectError(err)
	}

	s.notify(ctx, expense.Period, events.ReasonExpenseAdded)
	slog.Info("Expense added", "expense_id", expense.ID, "period", expense.Period)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(*expense)}), nil
}

// DeleteExpense removes an expense.
func (s *RentalService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	expenseID := req.Msg.ExpenseId
	slog.Info("DeleteExpense request received", "expense_id", expenseID)

	if expenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense_id required"))
	}

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	var periodKey string
	for _, e := range expenses {
		if e.ID == expenseID {
			periodKey = e.Period
			break
		}
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return nil, connectError(err)
	}

	s.notify(ctx, periodKey, events.ReasonExpenseDeleted)
	slog.Info("Expense deleted", "expense_id", expenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetPeriodSummary computes the ledger of one period.
func (s *RentalService) GetPeriodSummary(ctx context.Context, req *connect.Request[api.GetPeriodSummaryRequest]) (*connect.Response[api.GetPeriodSummaryResponse], error) {
	periodKey := req.Msg.Period
	slog.Info("GetPeriodSummary request received", "period", periodKey)

	if err := period.Validate(periodKey); err != nil {
		return nil, connectError(err)
	}

	report, err := LoadPeriod(ctx, s.store, s.owners, periodKey)
	if err != nil {
		slog.Error("GetPeriodSummary failed", "period", periodKey, "error", err)
		return nil, connectError(err)
	}

	apiExpenses := make([]*api.Expense, len(report.Expenses))
	for i, e := range report.Expenses {
		apiExpenses[i] = toAPIExpense(e)
	}

	slog.Info("GetPeriodSummary successful",
		"period", periodKey,
		"received", report.Summary.Received.String(),
		"transfers", len(report.Summary.Transfers),
	)

	return connect.NewResponse(&api.GetPeriodSummaryResponse{
		Summary:  toAPISummary(report.Summary),
		Units:    unitRows(report.Units, report.Records),
		Expenses: apiExpenses,
	}), nil
}

// PeriodReport is a period's summary with the inputs it was computed from.
type PeriodReport struct {
	Summary  calculator.PeriodSummary
	Units    []*models.Unit
	Records  []models.RevenueRecord
	Expenses []models.Expense
}

// LoadPeriod reads the ledger from store and summarizes one period.
func LoadPeriod(ctx context.Context, store storage.Store, owners models.OwnerSet, periodKey string) (*PeriodReport, error) {
	units, err := store.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	allRecords, err := store.ListRevenueRecords(ctx)
	if err != nil {
		return nil, err
	}
	allExpenses, err := store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	records, expenses := calculator.SelectPeriod(allRecords, allExpenses, periodKey)
	return &PeriodReport{
		Summary:  calculator.Summarize(records, expenses, owners, periodKey),
		Units:    units,
		Records:  records,
		Expenses: expenses,
	}, nil
}
