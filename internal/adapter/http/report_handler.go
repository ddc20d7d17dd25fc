package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Monthly(c echo.Context) error {
	out, err := h.uc.Monthly(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Areawise(c echo.Context) error {
	out, err := h.uc.Areawise(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Customer(c echo.Context) error {
	out, err := h.uc.Customer(c.Request().Context(), c.Param("customer_code"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}
