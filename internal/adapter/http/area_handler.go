package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/area"
)

type AreaHandler struct{ uc *area.Usecase }

func NewAreaHandler(uc *area.Usecase) *AreaHandler { return &AreaHandler{uc: uc} }

type createAreaReq struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	ShortCode string `json:"short_code" validate:"required,alphanum,min=2,max=5"`
	Pincode   string `json:"pincode" validate:"omitempty,numeric,len=6"`
}

func (h *AreaHandler) Create(c echo.Context) error {
	var req createAreaReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	a, err := h.uc.Create(c.Request().Context(), area.CreateInput(req))
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AreaHandler) List(c echo.Context) error {
	as, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, as)
}

func (h *AreaHandler) Get(c echo.Context) error {
	a, err := h.uc.GetByShortCode(c.Request().Context(), c.Param("short_code"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, a)
}
