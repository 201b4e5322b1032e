package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
)

// RentalServiceName is the fully-qualified name of the RentalService service.
const RentalServiceName = "rental.v1.RentalService"

// Procedure names, the HTTP paths the methods are served on.
const (
	RentalServiceListOwnersProcedure       = "/rental.v1.RentalService/ListOwners"
	RentalServiceCreateUnitProcedure       = "/rental.v1.RentalService/CreateUnit"
	RentalServiceListUnitsProcedure        = "/rental.v1.RentalService/ListUnits"
	RentalServiceDeleteUnitProcedure       = "/rental.v1.RentalService/DeleteUnit"
	RentalServiceSeedDefaultUnitsProcedure = "/rental.v1.RentalService/SeedDefaultUnits"
	RentalServiceToggleRentStatusProcedure = "/rental.v1.RentalService/ToggleRentStatus"
	RentalServiceSetCollectorProcedure     = "/rental.v1.RentalService/SetCollector"
	RentalServiceAddExpenseProcedure       = "/rental.v1.RentalService/AddExpense"
	RentalServiceDeleteExpenseProcedure    = "/rental.v1.RentalService/DeleteExpense"
	RentalServiceGetPeriodSummaryProcedure = "/rental.v1.RentalService/GetPeriodSummary"
)

// RentalServiceClient is a client for the rental.v1.RentalService service.
type RentalServiceClient interface {
	// ListOwners returns the owners in enumeration order.
	ListOwners(context.Context, *connect.Request[api.ListOwnersRequest]) (*connect.Response[api.ListOwnersResponse], error)
	CreateUnit(context.Context, *connect.Request[api.CreateUnitRequest]) (*connect.Response[api.CreateUnitResponse], error)
	ListUnits(context.Context, *connect.Request[api.ListUnitsRequest]) (*connect.Response[api.ListUnitsResponse], error)
	// DeleteUnit removes a unit together with its revenue records.
	DeleteUnit(context.Context, *connect.Request[api.DeleteUnitRequest]) (*connect.Response[api.DeleteUnitResponse], error)
	// SeedDefaultUnits creates the configured default units.
	SeedDefaultUnits(context.Context, *connect.Request[api.SeedDefaultUnitsRequest]) (*connect.Response[api.SeedDefaultUnitsResponse], error)
	// ToggleRentStatus flips a unit's payment status for a period.
	ToggleRentStatus(context.Context, *connect.Request[api.ToggleRentStatusRequest]) (*connect.Response[api.ToggleRentStatusResponse], error)
	// SetCollector changes which owner holds a paid unit's rent.
	SetCollector(context.Context, *connect.Request[api.SetCollectorRequest]) (*connect.Response[api.SetCollectorResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	// GetPeriodSummary computes balances and settlements for a period.
	GetPeriodSummary(context.Context, *connect.Request[api.GetPeriodSummaryRequest]) (*connect.Response[api.GetPeriodSummaryResponse], error)
}

// NewRentalServiceClient constructs a client for the rental.v1.RentalService service. baseURL is
// the server's root, e.g. http://localhost:8080. The JSON codec is applied
// before opts.
func NewRentalServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RentalServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &rentalServiceClient{
		listOwners: connect.NewClient[api.ListOwnersRequest, api.ListOwnersResponse](
			httpClient,
			baseURL+RentalServiceListOwnersProcedure,
			opts...,
		),
		createUnit: connect.NewClient[api.CreateUnitRequest, api.CreateUnitResponse](
			httpClient,
			baseURL+RentalServiceCreateUnitProcedure,
			opts...,
		),
		listUnits: connect.NewClient[api.ListUnitsRequest, api.ListUnitsResponse](
			httpClient,
			baseURL+RentalServiceListUnitsProcedure,
			opts...,
		),
		deleteUnit: connect.NewClient[api.DeleteUnitRequest, api.DeleteUnitResponse](
			httpClient,
			baseURL+RentalServiceDeleteUnitProcedure,
			opts...,
		),
		seedDefaultUnits: connect.NewClient[api.SeedDefaultUnitsRequest, api.SeedDefaultUnitsResponse](
			httpClient,
			baseURL+RentalServiceSeedDefaultUnitsProcedure,
			opts...,
		),
		toggleRentStatus: connect.NewClient[api.ToggleRentStatusRequest, api.ToggleRentStatusResponse](
			httpClient,
			baseURL+RentalServiceToggleRentStatusProcedure,
			opts...,
		),
		setCollector: connect.NewClient[api.SetCollectorRequest, api.SetCollectorResponse](
			httpClient,
			baseURL+RentalServiceSetCollectorProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+RentalServiceAddExpenseProcedure,
			opts...,
		),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient,
			baseURL+RentalServiceDeleteExpenseProcedure,
			opts...,
		),
		getPeriodSummary: connect.NewClient[api.GetPeriodSummaryRequest, api.GetPeriodSummaryResponse](
			httpClient,
			baseURL+RentalServiceGetPeriodSummaryProcedure,
			opts...,
		),
	}
}

type rentalServiceClient struct {
	listOwners       *connect.Client[api.ListOwnersRequest, api.ListOwnersResponse]
	createUnit       *connect.Client[api.CreateUnitRequest, api.CreateUnitResponse]
	listUnits        *connect.Client[api.ListUnitsRequest, api.ListUnitsResponse]
	deleteUnit       *connect.Client[api.DeleteUnitRequest, api.DeleteUnitResponse]
	seedDefaultUnits *connect.Client[api.SeedDefaultUnitsRequest, api.SeedDefaultUnitsResponse]
	toggleRentStatus *connect.Client[api.ToggleRentStatusRequest, api.ToggleRentStatusResponse]
	setCollector     *connect.Client[api.SetCollectorRequest, api.SetCollectorResponse]
	addExpense       *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	deleteExpense    *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	getPeriodSummary *connect.Client[api.GetPeriodSummaryRequest, api.GetPeriodSummaryResponse]
}

func (c *rentalServiceClient) ListOwners(ctx context.Context, req *connect.Request[api.ListOwnersRequest]) (*connect.Response[api.ListOwnersResponse], error) {
	return c.listOwners.CallUnary(ctx, req)
}

func (c *rentalServiceClient) CreateUnit(ctx context.Context, req *connect.Request[api.CreateUnitRequest]) (*connect.Response[api.CreateUnitResponse], error) {
	return c.createUnit.CallUnary(ctx, req)
}

func (c *rentalServiceClient) ListUnits(ctx context.Context, req *connect.Request[api.ListUnitsRequest]) (*connect.Response[api.ListUnitsResponse], error) {
	return c.listUnits.CallUnary(ctx, req)
}

func (c *rentalServiceClient) DeleteUnit(ctx context.Context, req *connect.Request[api.DeleteUnitRequest]) (*connect.Response[api.DeleteUnitResponse], error) {
	return c.deleteUnit.CallUnary(ctx, req)
}

func (c *rentalServiceClient) SeedDefaultUnits(ctx context.Context, req *connect.Request[api.SeedDefaultUnitsRequest]) (*connect.Response[api.SeedDefaultUnitsResponse], error) {
	return c.seedDefaultUnits.CallUnary(ctx, req)
}

func (c *rentalServiceClient) ToggleRentStatus(ctx context.Context, req *connect.Request[api.ToggleRentStatusRequest]) (*connect.Response[api.ToggleRentStatusResponse], error) {
	return c.toggleRentStatus.CallUnary(ctx, req)
}

func (c *rentalServiceClient) SetCollector(ctx context.Context, req *connect.Request[api.SetCollectorRequest]) (*connect.Response[api.SetCollectorResponse], error) {
	return c.setCollector.CallUnary(ctx, req)
}

func (c *rentalServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *rentalServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *rentalServiceClient) GetPeriodSummary(ctx context.Context, req *connect.Request[api.GetPeriodSummaryRequest]) (*connect.Response[api.GetPeriodSummaryResponse], error) {
	return c.getPeriodSummary.CallUnary(ctx, req)
}

// RentalServiceHandler is implemented by servers of the rental.v1.RentalService service.
type RentalServiceHandler interface {
	ListOwners(context.Context, *connect.Request[api.ListOwnersRequest]) (*connect.Response[api.ListOwnersResponse], error)
	CreateUnit(context.Context, *connect.Request[api.CreateUnitRequest]) (*connect.Response[api.CreateUnitResponse], error)
	ListUnits(context.Context, *connect.Request[api.ListUnitsRequest]) (*connect.Response[api.ListUnitsResponse], error)
	DeleteUnit(context.Context, *connect.Request[api.DeleteUnitRequest]) (*connect.Response[api.DeleteUnitResponse], error)
	SeedDefaultUnits(context.Context, *connect.Request[api.SeedDefaultUnitsRequest]) (*connect.Response[api.SeedDefaultUnitsResponse], error)
	ToggleRentStatus(context.Context, *connect.Request[api.ToggleRentStatusRequest]) (*connect.Response[api.ToggleRentStatusResponse], error)
	SetCollector(context.Context, *connect.Request[api.SetCollectorRequest]) (*connect.Response[api.SetCollectorResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	GetPeriodSummary(context.Context, *connect.Request[api.GetPeriodSummaryRequest]) (*connect.Response[api.GetPeriodSummaryResponse], error)
}

// NewRentalServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRentalServiceHandler(svc RentalServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	listOwnersHandler := connect.NewUnaryHandler(
		RentalServiceListOwnersProcedure,
		svc.ListOwners,
		opts...,
	)
	createUnitHandler := connect.NewUnaryHandler(
		RentalServiceCreateUnitProcedure,
		svc.CreateUnit,
		opts...,
	)
	listUnitsHandler := connect.NewUnaryHandler(
		RentalServiceListUnitsProcedure,
		svc.ListUnits,
		opts...,
	)
	deleteUnitHandler := connect.NewUnaryHandler(
		RentalServiceDeleteUnitProcedure,
		svc.DeleteUnit,
		opts...,
	)
	seedDefaultUnitsHandler := connect.NewUnaryHandler(
		RentalServiceSeedDefaultUnitsProcedure,
		svc.SeedDefaultUnits,
		opts...,
	)
	toggleRentStatusHandler := connect.NewUnaryHandler(
		RentalServiceToggleRentStatusProcedure,
		svc.ToggleRentStatus,
		opts...,
	)
	setCollectorHandler := connect.NewUnaryHandler(
		RentalServiceSetCollectorProcedure,
		svc.SetCollector,
		opts...,
	)
	addExpenseHandler := connect.NewUnaryHandler(
		RentalServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	deleteExpenseHandler := connect.NewUnaryHandler(
		RentalServiceDeleteExpenseProcedure,
		svc.DeleteExpense,
		opts...,
	)
	getPeriodSummaryHandler := connect.NewUnaryHandler(
		RentalServiceGetPeriodSummaryProcedure,
		svc.GetPeriodSummary,
		opts...,
	)
	return "/rental.v1.RentalService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RentalServiceListOwnersProcedure:
			listOwnersHandler.ServeHTTP(w, r)
		case RentalServiceCreateUnitProcedure:
			createUnitHandler.ServeHTTP(w, r)
		case RentalServiceListUnitsProcedure:
			listUnitsHandler.ServeHTTP(w, r)
		case RentalServiceDeleteUnitProcedure:
			deleteUnitHandler.ServeHTTP(w, r)
		case RentalServiceSeedDefaultUnitsProcedure:
			seedDefaultUnitsHandler.ServeHTTP(w, r)
		case RentalServiceToggleRentStatusProcedure:
			toggleRentStatusHandler.ServeHTTP(w, r)
		case RentalServiceSetCollectorProcedure:
			setCollectorHandler.ServeHTTP(w, r)
		case RentalServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case RentalServiceDeleteExpenseProcedure:
			deleteExpenseHandler.ServeHTTP(w, r)
		case RentalServiceGetPeriodSummaryProcedure:
			getPeriodSummaryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedRentalServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRentalServiceHandler struct{}

func (UnimplementedRentalServiceHandler) ListOwners(context.Context, *connect.Request[api.ListOwnersRequest]) (*connect.Response[api.ListOwnersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.ListOwners is not implemented"))
}

func (UnimplementedRentalServiceHandler) CreateUnit(context.Context, *connect.Request[api.CreateUnitRequest]) (*connect.Response[api.CreateUnitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.CreateUnit is not implemented"))
}

func (UnimplementedRentalServiceHandler) ListUnits(context.Context, *connect.Request[api.ListUnitsRequest]) (*connect.Response[api.ListUnitsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.ListUnits is not implemented"))
}

func (UnimplementedRentalServiceHandler) DeleteUnit(context.Context, *connect.Request[api.DeleteUnitRequest]) (*connect.Response[api.DeleteUnitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.DeleteUnit is not implemented"))
}

func (UnimplementedRentalServiceHandler) SeedDefaultUnits(context.Context, *connect.Request[api.SeedDefaultUnitsRequest]) (*connect.Response[api.SeedDefaultUnitsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.SeedDefaultUnits is not implemented"))
}

func (UnimplementedRentalServiceHandler) ToggleRentStatus(context.Context, *connect.Request[api.ToggleRentStatusRequest]) (*connect.Response[api.ToggleRentStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.ToggleRentStatus is not implemented"))
}

func (UnimplementedRentalServiceHandler) SetCollector(context.Context, *connect.Request[api.SetCollectorRequest]) (*connect.Response[api.SetCollectorResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.SetCollector is not implemented"))
}

func (UnimplementedRentalServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.AddExpense is not implemented"))
}

func (UnimplementedRentalServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.DeleteExpense is not implemented"))
}

func (UnimplementedRentalServiceHandler) GetPeriodSummary(context.Context, *connect.Request[api.GetPeriodSummaryRequest]) (*connect.Response[api.GetPeriodSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.RentalService.GetPeriodSummary is not implemented"))
}
