package http

import (
	"errors"
	"net/http"

	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TotalsResponse is the wire form of aggregated money totals. Decimal values
// serialize as JSON strings so clients never see floating point artifacts.
type TotalsResponse struct {
	TotalCost           decimal.Decimal `json:"totalCost"`
	TotalItemAmount     decimal.Decimal `json:"totalItemAmount"`
	TotalShippingAmount decimal.Decimal `json:"totalShippingAmount"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	SalesTax            decimal.Decimal `json:"salesTax"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
}

func totalsResponse(totals services.Totals) TotalsResponse {
	return TotalsResponse{
		TotalCost:           totals.TotalCost,
		TotalItemAmount:     totals.TotalItemAmount,
		TotalShippingAmount: totals.TotalShippingAmount,
		Subtotal:            totals.Subtotal,
		SalesTax:            totals.SalesTax,
		TotalAmount:         totals.TotalAmount,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps a use-case error to its HTTP status. Stale-version and
// already-converted failures both surface as 409 so clients reload and retry;
// rejected transitions are 422 because the request was well formed but the
// lifecycle forbids it.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
