package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	repaymentDomain "cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type createRepaymentReq struct {
	LoanID        string  `json:"loan_id" validate:"required,hex32"`
	Amount        float64 `json:"amount" validate:"required,gt=0,dec2"`
	DueDate       string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	RepaymentDate string  `json:"repayment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=CASH UPI BANK"`
}

func (h *RepaymentHandler) Create(c echo.Context) error {
	var req createRepaymentReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return bindError(c)
	}
	paidAt, err := parseDatePtr(req.RepaymentDate)
	if err != nil {
		return bindError(c)
	}
	dto, err := h.uc.Apply(c.Request().Context(), repayment.ApplyInput{
		LoanID:        req.LoanID,
		Amount:        req.Amount,
		DueDate:       dueDate,
		RepaymentDate: paidAt,
		PaymentMethod: repaymentDomain.Method(req.PaymentMethod),
	})
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) List(c echo.Context) error {
	if loanID := c.QueryParam("loan"); loanID != "" {
		rps, err := h.uc.ListByLoan(c.Request().Context(), loanID)
		if err != nil {
			return jsonError(c, err, http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, rps)
	}
	rps, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, rps)
}

type updateRepaymentReq struct {
	LoanID        string  `json:"loan_id" validate:"required,hex32"`
	Amount        float64 `json:"amount" validate:"required,gt=0,dec2"`
	DueDate       string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	RepaymentDate string  `json:"repayment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=CASH UPI BANK"`
}

// Update is the full edit: amount, dates, method. The loan balance is
// rederived in the same transaction.
func (h *RepaymentHandler) Update(c echo.Context) error {
	var req updateRepaymentReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	in := repayment.ApplyInput{
		RepaymentID:   c.Param("repayment_id"),
		LoanID:        req.LoanID,
		Amount:        req.Amount,
		PaymentMethod: repaymentDomain.Method(req.PaymentMethod),
	}
	if req.DueDate != "" {
		t, err := parseDate(req.DueDate)
		if err != nil {
			return bindError(c)
		}
		in.DueDate = t
	}
	paidAt, err := parseDatePtr(req.RepaymentDate)
	if err != nil {
		return bindError(c)
	}
	in.RepaymentDate = paidAt

	dto, err := h.uc.Apply(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, dto)
}

type markPaidReq struct {
	RepaymentDate string `json:"repayment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=CASH UPI BANK"`
}

// MarkPaid (PATCH) records the collection date without editing the amount.
func (h *RepaymentHandler) MarkPaid(c echo.Context) error {
	var req markPaidReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	paidAt := time.Now().UTC()
	if req.RepaymentDate != "" {
		t, err := parseDate(req.RepaymentDate)
		if err != nil {
			return bindError(c)
		}
		paidAt = t
	}
	dto, err := h.uc.MarkPaid(c.Request().Context(), c.Param("repayment_id"), paidAt, repaymentDomain.Method(req.PaymentMethod))
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("repayment_id")); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
