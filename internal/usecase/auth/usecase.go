package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cashit-backend/internal/domain/user"
)

// Mailer delivers OTP codes.
type Mailer interface {
	SendOtp(to, code string, ttlMinutes int) error
}

type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Usecase struct {
	users  user.Repository
	otps   user.OtpRepository
	mailer Mailer

	jwtSecret []byte
	jwtTTL    time.Duration
	otpTTL    time.Duration
	now       func() time.Time
}

func NewUsecase(users user.Repository, otps user.OtpRepository, mailer Mailer, jwtSecret []byte, jwtTTL, otpTTL time.Duration) *Usecase {
	return &Usecase{
		users: users, otps: otps, mailer: mailer,
		jwtSecret: jwtSecret, jwtTTL: jwtTTL, otpTTL: otpTTL,
		now: time.Now,
	}
}

type UserDTO struct {
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     user.Role `json:"role"`
}

func toDTO(u *user.User) UserDTO {
	return UserDTO{Username: u.Username, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Login accepts a username or an email in the same field.
func (u *Usecase) Login(ctx context.Context, login, password string) (string, *UserDTO, error) {
	usr, err := u.users.GetByUsername(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		usr, err = u.users.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, user.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return "", nil, user.ErrInvalidCredentials
	}

	now := u.now()
	claims := Claims{
		UserID:   usr.ID,
		Username: usr.Username,
		Role:     string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.jwtTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	dto := toDTO(usr)
	return token, &dto, nil
}

type CreateUserInput struct {
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
}

func (u *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	switch in.Role {
	case user.RoleAdmin, user.RoleAgent:
	default:
		return nil, errors.New("role must be ADMIN or AGENT")
	}
	if len(in.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		Name:         in.Name,
		Username:     strings.ToLower(strings.TrimSpace(in.Username)),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrDuplicate
		}
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

func (u *Usecase) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toDTO(&users[i]))
	}
	return out, nil
}

type UpdateUserInput struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Role     *user.Role `json:"role"`
	Password *string    `json:"password"`
}

func (u *Usecase) UpdateUser(ctx context.Context, username string, in UpdateUserInput) (*UserDTO, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		usr.Name = *in.Name
	}
	if in.Email != nil {
		usr.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Role != nil {
		switch *in.Role {
		case user.RoleAdmin, user.RoleAgent:
			usr.Role = *in.Role
		default:
			return nil, errors.New("role must be ADMIN or AGENT")
		}
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, errors.New("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = string(hash)
	}
	if err := u.users.Save(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrDuplicate
		}
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

func (u *Usecase) DeleteUser(ctx context.Context, username string) error {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}
	return u.users.Delete(ctx, usr)
}

// SendOtp issues a fresh reset code for the email, replacing any live one.
func (u *Usecase) SendOtp(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := u.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}

	code, err := sixDigits()
	if err != nil {
		return err
	}
	otp := &user.Otp{
		Email:     email,
		Code:      code,
		ExpiresAt: u.now().UTC().Add(u.otpTTL),
	}
	if err := u.otps.Upsert(ctx, otp); err != nil {
		return err
	}
	if u.mailer == nil {
		log.Printf("no mailer configured, otp for %s not delivered", email)
		return nil
	}
	return u.mailer.SendOtp(email, code, int(u.otpTTL.Minutes()))
}

func (u *Usecase) VerifyOtp(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	otp, err := u.otps.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrOtpInvalid
		}
		return err
	}
	if u.now().UTC().After(otp.ExpiresAt) {
		return user.ErrOtpExpired
	}
	if otp.Code != code {
		return user.ErrOtpInvalid
	}
	return nil
}

// ResetPassword verifies the OTP, rehashes the password and burns the code.
func (u *Usecase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := u.VerifyOtp(ctx, email, code); err != nil {
		return err
	}
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usr.PasswordHash = string(hash)
	if err := u.users.Save(ctx, usr); err != nil {
		return err
	}
	return u.otps.DeleteByEmail(ctx, email)
}

func sixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
