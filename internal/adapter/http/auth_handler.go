package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	token, usr, err := h.uc.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": usr})
}

type sendOtpReq struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req sendOtpReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	if err := h.uc.SendOtp(c.Request().Context(), req.Email); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
}

type verifyOtpReq struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric,len=6"`
}

func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req verifyOtpReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	if err := h.uc.VerifyOtp(c.Request().Context(), req.Email, req.Code); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "verified"})
}

type resetPasswordReq struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,numeric,len=6"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	if err := h.uc.ResetPassword(c.Request().Context(), req.Email, req.Code, req.Password); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "password reset"})
}
