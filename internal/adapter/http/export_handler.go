package http

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/loan"
	"cashit-backend/internal/usecase/repayment"
)

// ExportHandler streams report data as CSV downloads.
type ExportHandler struct {
	loans      *loan.Usecase
	repayments *repayment.Usecase
}

func NewExportHandler(loans *loan.Usecase, repayments *repayment.Usecase) *ExportHandler {
	return &ExportHandler{loans: loans, repayments: repayments}
}

func beginCSV(c echo.Context, filename string) *csv.Writer {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	h.Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
	return csv.NewWriter(c.Response())
}

func money(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func (h *ExportHandler) Loans(c echo.Context) error {
	dtos, err := h.loans.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}

	w := beginCSV(c, "loans.csv")
	defer w.Flush()

	if err := w.Write([]string{"loan_id", "customer_code", "customer_name", "amount", "rate", "tenure_months", "loan_date", "interest_amount", "pending_amount", "status", "overdue"}); err != nil {
		return err
	}
	for _, d := range dtos {
		row := []string{
			d.LoanID,
			d.CustomerCode,
			d.CustomerName,
			money(d.Amount),
			strconv.FormatFloat(d.Rate, 'f', -1, 64),
			strconv.Itoa(d.TenureMonths),
			d.LoanDate.Format(dateLayout),
			money(d.InterestAmount),
			money(d.PendingAmount),
			string(d.Status),
			strconv.FormatBool(d.Overdue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportHandler) Repayments(c echo.Context) error {
	dtos, err := h.repayments.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}

	w := beginCSV(c, "repayments.csv")
	defer w.Flush()

	if err := w.Write([]string{"repayment_id", "loan_id", "amount", "due_date", "repayment_date", "payment_method"}); err != nil {
		return err
	}
	for _, d := range dtos {
		paidAt := ""
		if d.RepaymentDate != nil {
			paidAt = d.RepaymentDate.Format(dateLayout)
		}
		row := []string{
			d.RepaymentID,
			d.LoanID,
			money(d.Amount),
			d.DueDate.Format(dateLayout),
			paidAt,
			string(d.PaymentMethod),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
