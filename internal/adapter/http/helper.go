package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/expense"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/domain/user"
)

const dateLayout = "2006-01-02"

// httpStatus maps domain sentinels onto statuses; anything unknown keeps the
// handler-supplied fallback.
func httpStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, area.ErrNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, repayment.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, expense.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, area.ErrDuplicateShortCode),
		errors.Is(err, customer.ErrDuplicateCode),
		errors.Is(err, customer.ErrHasActiveLoan),
		errors.Is(err, loan.ErrActiveLoanExists),
		errors.Is(err, user.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrOtpInvalid),
		errors.Is(err, user.ErrOtpExpired),
		errors.Is(err, repayment.ErrLoanMismatch):
		return http.StatusBadRequest
	}
	return fallback
}

func jsonError(c echo.Context, err error, fallback int) error {
	return c.JSON(httpStatus(err, fallback), ErrorResponse{Error: err.Error()})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

func bindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
