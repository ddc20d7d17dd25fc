package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"cashit-backend/internal/domain/user"
	"cashit-backend/internal/testutil/usermock"
	uc "cashit-backend/internal/usecase/auth"
)

func newAuthHandler(users *usermock.Repo, otps *usermock.OtpRepo) *AuthHandler {
	usecase := uc.NewUsecase(users, otps, nil, []byte("handler-test-secret"), time.Hour, 10*time.Minute)
	return NewAuthHandler(usecase)
}

func TestLogin_Success(t *testing.T) {
	e := newEchoWithValidator()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*user.User, error) {
			return &user.User{ID: 1, Username: "admin", Role: user.RoleAdmin, PasswordHash: string(hash)}, nil
		},
	}
	h := newAuthHandler(users, &usermock.OtpRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/login", mustJSON(map[string]string{
		"login":    "admin",
		"password": "hunter2hunter2",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string     `json:"token"`
		User  uc.UserDTO `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token in response")
	}
	if resp.User.Username != "admin" {
		t.Fatalf("user = %+v", resp.User)
	}
}

func TestLogin_WrongPassword401(t *testing.T) {
	e := newEchoWithValidator()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*user.User, error) {
			return &user.User{ID: 1, Username: "admin", PasswordHash: string(hash)}, nil
		},
	}
	h := newAuthHandler(users, &usermock.OtpRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/login", mustJSON(map[string]string{
		"login":    "admin",
		"password": "wrong-password",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogin_ShortPassword422(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandler(&usermock.Repo{}, &usermock.OtpRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/login", mustJSON(map[string]string{
		"login":    "admin",
		"password": "short",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestVerifyOtp_Expired400(t *testing.T) {
	e := newEchoWithValidator()

	otps := &usermock.OtpRepo{
		GetByEmailFn: func(context.Context, string) (*user.Otp, error) {
			return &user.Otp{Email: "ops@example.com", Code: "123456",
				ExpiresAt: time.Now().UTC().Add(-time.Minute)}, nil
		},
	}
	h := newAuthHandler(&usermock.Repo{}, otps)

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/verify-otp", mustJSON(map[string]string{
		"email": "ops@example.com",
		"code":  "123456",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.VerifyOtp(c); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
