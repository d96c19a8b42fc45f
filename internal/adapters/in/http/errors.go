package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates the errs taxonomy into HTTP status codes.
// Unrecognized errors surface as 500 without leaking their message.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidStatusTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInsufficientInventory):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
