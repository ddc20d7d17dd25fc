package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/domain/user"
	"cashit-backend/internal/usecase/auth"
)

// UserHandler manages back-office accounts. Routes sit behind the ADMIN gate.
type UserHandler struct{ uc *auth.Usecase }

func NewUserHandler(uc *auth.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN AGENT"`
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	dto, err := h.uc.CreateUser(c.Request().Context(), auth.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) List(c echo.Context) error {
	dtos, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, dtos)
}

type updateUserReq struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN AGENT"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	in := auth.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		r := user.Role(*req.Role)
		in.Role = &r
	}
	dto, err := h.uc.UpdateUser(c.Request().Context(), c.Param("username"), in)
	if err != nil {
		return jsonError(c, err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("username")); err != nil {
		return jsonError(c, err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}
