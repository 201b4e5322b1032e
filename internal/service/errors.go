package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/sriteja123gujjari/RentalManagement/internal/calculator"
	"github.com/sriteja123gujjari/RentalManagement/internal/period"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

// connectError maps domain errors to connect codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrUnitNotFound),
		errors.Is(err, storage.ErrExpenseNotFound),
		errors.Is(err, calculator.ErrRecordNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrNotPaid):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, calculator.ErrUnknownOwner),
		errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, calculator.ErrNegativeAmount),
		errors.Is(err, period.ErrInvalidPeriod):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
