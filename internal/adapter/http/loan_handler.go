package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	CustomerCode string  `json:"customer_code" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0,dec2"`
	Rate         float64 `json:"rate" validate:"gte=0,dec2"`
	TenureMonths int     `json:"tenure_months" validate:"required,gt=0"`
	LoanDate     string  `json:"loan_date" validate:"omitempty,datetime=2006-01-02"`
	DocumentURL  string  `json:"document_url" validate:"omitempty,url"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	var loanDate time.Time
	if req.LoanDate != "" {
		var err error
		loanDate, err = parseDate(req.LoanDate)
		if err != nil {
			return bindError(c)
		}
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateInput{
		CustomerCode: req.CustomerCode,
		Amount:       req.Amount,
		Rate:         req.Rate,
		TenureMonths: req.TenureMonths,
		LoanDate:     loanDate,
		DocumentURL:  req.DocumentURL,
	})
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	if code := c.QueryParam("customer"); code != "" {
		dtos, err := h.uc.ListByCustomer(c.Request().Context(), code)
		if err != nil {
			return jsonError(c, err, http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateLoanReq struct {
	Rate         *float64 `json:"rate" validate:"omitempty,gte=0,dec2"`
	TenureMonths *int     `json:"tenure_months" validate:"omitempty,gt=0"`
	LoanDate     *string  `json:"loan_date" validate:"omitempty,datetime=2006-01-02"`
	DocumentURL  *string  `json:"document_url" validate:"omitempty,url"`
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	in := loan.UpdateInput{
		Rate:         req.Rate,
		TenureMonths: req.TenureMonths,
		DocumentURL:  req.DocumentURL,
	}
	if req.LoanDate != nil {
		t, err := parseDate(*req.LoanDate)
		if err != nil {
			return bindError(c)
		}
		in.LoanDate = &t
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("loan_id"), in)
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
