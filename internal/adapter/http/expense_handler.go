package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/expense"
)

type ExpenseHandler struct{ uc *expense.Usecase }

func NewExpenseHandler(uc *expense.Usecase) *ExpenseHandler { return &ExpenseHandler{uc: uc} }

type createExpenseReq struct {
	InvoiceNumber string  `json:"invoice_number" validate:"omitempty,max=50"`
	Title         string  `json:"title" validate:"required,max=200"`
	Amount        float64 `json:"amount" validate:"required,gt=0,dec2"`
	Date          string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string  `json:"notes"`
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	var date time.Time
	if req.Date != "" {
		var err error
		date, err = parseDate(req.Date)
		if err != nil {
			return bindError(c)
		}
	}
	out, err := h.uc.Create(c.Request().Context(), expense.CreateInput{
		InvoiceNumber: req.InvoiceNumber,
		Title:         req.Title,
		Amount:        req.Amount,
		Date:          date,
		Notes:         req.Notes,
	})
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ExpenseHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("expense_id"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

type updateExpenseReq struct {
	InvoiceNumber *string  `json:"invoice_number" validate:"omitempty,max=50"`
	Title         *string  `json:"title" validate:"omitempty,max=200"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0,dec2"`
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string  `json:"notes"`
}

func (h *ExpenseHandler) Update(c echo.Context) error {
	var req updateExpenseReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	in := expense.UpdateInput{
		InvoiceNumber: req.InvoiceNumber,
		Title:         req.Title,
		Amount:        req.Amount,
		Notes:         req.Notes,
	}
	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			return bindError(c)
		}
		in.Date = &t
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("expense_id"), in)
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("expense_id")); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
