package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/customer"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type onboardCustomerReq struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	GuardianName  string `json:"guardian_name" validate:"omitempty,max=100"`
	Gender        string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DOB           string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Aadhar        string `json:"aadhar" validate:"omitempty,numeric,len=12"`
	Mobile        string `json:"mobile" validate:"required,numeric,len=10"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	PhotoURL      string `json:"photo_url" validate:"omitempty,url"`
	DocumentURL   string `json:"document_url" validate:"omitempty,url"`
	AreaShortCode string `json:"area_short_code" validate:"required,alphanum"`
}

func (h *CustomerHandler) Onboard(c echo.Context) error {
	var req onboardCustomerReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	dob, err := parseDatePtr(req.DOB)
	if err != nil {
		return bindError(c)
	}
	out, err := h.uc.Onboard(c.Request().Context(), customer.OnboardInput{
		Name:          req.Name,
		GuardianName:  req.GuardianName,
		Gender:        req.Gender,
		DOB:           dob,
		Aadhar:        req.Aadhar,
		Mobile:        req.Mobile,
		Email:         req.Email,
		Address:       req.Address,
		PhotoURL:      req.PhotoURL,
		DocumentURL:   req.DocumentURL,
		AreaShortCode: req.AreaShortCode,
	})
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("area"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("customer_code"))
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, out)
}

type updateCustomerReq struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=100"`
	GuardianName *string `json:"guardian_name"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DOB          *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Aadhar       *string `json:"aadhar" validate:"omitempty,numeric,len=12"`
	Mobile       *string `json:"mobile" validate:"omitempty,numeric,len=10"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Address      *string `json:"address"`
	PhotoURL     *string `json:"photo_url" validate:"omitempty,url"`
	DocumentURL  *string `json:"document_url" validate:"omitempty,url"`
}

func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	in := customer.UpdateInput{
		Name:         req.Name,
		GuardianName: req.GuardianName,
		Gender:       req.Gender,
		Aadhar:       req.Aadhar,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		PhotoURL:     req.PhotoURL,
		DocumentURL:  req.DocumentURL,
	}
	if req.DOB != nil {
		dob, err := parseDatePtr(*req.DOB)
		if err != nil {
			return bindError(c)
		}
		in.DOB = dob
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("customer_code"), in)
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("customer_code")); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
