package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"cashit-backend/internal/domain/user"
	"cashit-backend/internal/testutil/usermock"
)

var testSecret = []byte("test-secret")

type mailerFunc func(to, code string, ttlMinutes int) error

func (f mailerFunc) SendOtp(to, code string, ttlMinutes int) error { return f(to, code, ttlMinutes) }

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func newTestUsecase(users *usermock.Repo, otps *usermock.OtpRepo, m Mailer) *Usecase {
	return NewUsecase(users, otps, m, testSecret, time.Hour, 10*time.Minute)
}

func TestLogin_ByUsernameIssuesToken(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(_ context.Context, username string) (*user.User, error) {
			if username != "admin" {
				t.Fatalf("lookup got %q", username)
			}
			return &user.User{ID: 1, Username: "admin", Role: user.RoleAdmin, PasswordHash: hashOf(t, "hunter2hunter2")}, nil
		},
	}
	u := newTestUsecase(users, &usermock.OtpRepo{}, nil)

	token, dto, err := u.Login(context.Background(), "admin", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if dto.Role != user.RoleAdmin {
		t.Fatalf("role = %v", dto.Role)
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" || claims.Role != "ADMIN" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Sub(claims.IssuedAt.Time) != time.Hour {
		t.Fatalf("expiry window wrong: %v -> %v", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestLogin_FallsBackToEmail(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(_ context.Context, email string) (*user.User, error) {
			if email != "admin@example.com" {
				t.Fatalf("email lookup got %q", email)
			}
			return &user.User{ID: 1, Username: "admin", PasswordHash: hashOf(t, "hunter2hunter2")}, nil
		},
	}
	u := newTestUsecase(users, &usermock.OtpRepo{}, nil)

	if _, _, err := u.Login(context.Background(), "admin@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*user.User, error) {
			return &user.User{ID: 1, Username: "admin", PasswordHash: hashOf(t, "correct-horse")}, nil
		},
	}
	u := newTestUsecase(users, &usermock.OtpRepo{}, nil)

	_, _, err := u.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	u := newTestUsecase(&usermock.Repo{}, &usermock.OtpRepo{}, nil)

	_, _, err := u.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateUser_HashesAndNormalizes(t *testing.T) {
	var created *user.User
	users := &usermock.Repo{
		CreateFn: func(_ context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	u := newTestUsecase(users, &usermock.OtpRepo{}, nil)

	dto, err := u.CreateUser(context.Background(), CreateUserInput{
		Name: "Ops", Username: " Admin ", Email: " OPS@Example.COM ", Password: "hunter2hunter2", Role: user.RoleAgent,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Username != "admin" || created.Email != "ops@example.com" {
		t.Fatalf("not normalized: %q %q", created.Username, created.Email)
	}
	if created.PasswordHash == "hunter2hunter2" || created.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Fatal("hash does not verify")
	}
	if dto.Role != user.RoleAgent {
		t.Fatalf("role = %v", dto.Role)
	}
}

func TestCreateUser_Rejections(t *testing.T) {
	u := newTestUsecase(&usermock.Repo{}, &usermock.OtpRepo{}, nil)

	if _, err := u.CreateUser(context.Background(), CreateUserInput{Role: "ROOT", Password: "hunter2hunter2"}); err == nil {
		t.Fatal("unknown role must fail")
	}
	if _, err := u.CreateUser(context.Background(), CreateUserInput{Role: user.RoleAgent, Password: "short"}); err == nil {
		t.Fatal("short password must fail")
	}
}

func TestSendOtp_UpsertsAndMails(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*user.User, error) {
			return &user.User{ID: 1, Email: "ops@example.com"}, nil
		},
	}
	var stored *user.Otp
	otps := &usermock.OtpRepo{
		UpsertFn: func(_ context.Context, o *user.Otp) error {
			stored = o
			return nil
		},
	}
	var mailedCode string
	m := mailerFunc(func(to, code string, ttl int) error {
		if to != "ops@example.com" {
			t.Fatalf("mail to %q", to)
		}
		if ttl != 10 {
			t.Fatalf("ttl = %d", ttl)
		}
		mailedCode = code
		return nil
	})
	u := newTestUsecase(users, otps, m)

	if err := u.SendOtp(context.Background(), " OPS@Example.com "); err != nil {
		t.Fatalf("SendOtp: %v", err)
	}
	if stored == nil || stored.Email != "ops@example.com" {
		t.Fatalf("otp row = %+v", stored)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(stored.Code) {
		t.Fatalf("code %q is not six digits", stored.Code)
	}
	if mailedCode != stored.Code {
		t.Fatal("mailed code differs from stored code")
	}
}

func TestSendOtp_UnknownEmail(t *testing.T) {
	u := newTestUsecase(&usermock.Repo{}, &usermock.OtpRepo{}, nil)

	if err := u.SendOtp(context.Background(), "ghost@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestVerifyOtp(t *testing.T) {
	live := &user.Otp{Email: "ops@example.com", Code: "123456", ExpiresAt: time.Now().UTC().Add(5 * time.Minute)}
	otps := &usermock.OtpRepo{
		GetByEmailFn: func(context.Context, string) (*user.Otp, error) { return live, nil },
	}
	u := newTestUsecase(&usermock.Repo{}, otps, nil)

	if err := u.VerifyOtp(context.Background(), "ops@example.com", "123456"); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}
	if err := u.VerifyOtp(context.Background(), "ops@example.com", "000000"); !errors.Is(err, user.ErrOtpInvalid) {
		t.Fatalf("err = %v, want ErrOtpInvalid", err)
	}

	live.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if err := u.VerifyOtp(context.Background(), "ops@example.com", "123456"); !errors.Is(err, user.ErrOtpExpired) {
		t.Fatalf("err = %v, want ErrOtpExpired", err)
	}
}

func TestResetPassword_RehashesAndBurnsCode(t *testing.T) {
	usr := &user.User{ID: 1, Email: "ops@example.com", PasswordHash: hashOf(t, "old-password")}
	var saved *user.User
	users := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*user.User, error) { return usr, nil },
		SaveFn: func(_ context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}
	var burned bool
	otps := &usermock.OtpRepo{
		GetByEmailFn: func(context.Context, string) (*user.Otp, error) {
			return &user.Otp{Email: "ops@example.com", Code: "123456", ExpiresAt: time.Now().UTC().Add(time.Minute)}, nil
		},
		DeleteByEmailFn: func(context.Context, string) error {
			burned = true
			return nil
		},
	}
	u := newTestUsecase(users, otps, nil)

	if err := u.ResetPassword(context.Background(), "ops@example.com", "123456", "new-password-1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if saved == nil || bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("new-password-1")) != nil {
		t.Fatal("new password does not verify")
	}
	if !burned {
		t.Fatal("otp not deleted after use")
	}
}

func TestResetPassword_WrongCode(t *testing.T) {
	otps := &usermock.OtpRepo{
		GetByEmailFn: func(context.Context, string) (*user.Otp, error) {
			return &user.Otp{Code: "123456", ExpiresAt: time.Now().UTC().Add(time.Minute)}, nil
		},
	}
	u := newTestUsecase(&usermock.Repo{}, otps, nil)

	err := u.ResetPassword(context.Background(), "ops@example.com", "999999", "new-password-1")
	if !errors.Is(err, user.ErrOtpInvalid) {
		t.Fatalf("err = %v, want ErrOtpInvalid", err)
	}
}
