package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "cashit-backend/internal/domain/user"
)

func TestUserDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Ops", Username: "admin", Email: "a@example.com", PasswordHash: "x", Role: domain.RoleAdmin}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.User{Name: "Ops2", Username: "admin", Email: "b@example.com", PasswordHash: "x", Role: domain.RoleAgent}
	if err := repo.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate username err = %v, want ErrDuplicatedKey", err)
	}
}

func TestUserLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Ops", Username: "admin", Email: "a@example.com", PasswordHash: "x", Role: domain.RoleAdmin}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byName, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	byMail, err := repo.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byName.ID != byMail.ID {
		t.Fatal("lookups disagree")
	}
	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user err = %v", err)
	}
}

func TestOtpUpsertReplacesCode(t *testing.T) {
	db := openTestDB(t)
	repo := NewOtpRepository(db)
	ctx := context.Background()

	first := &domain.Otp{Email: "a@example.com", Code: "111111", ExpiresAt: time.Now().UTC().Add(10 * time.Minute)}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	second := &domain.Otp{Email: "a@example.com", Code: "222222", ExpiresAt: time.Now().UTC().Add(10 * time.Minute)}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert#2: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Code != "222222" {
		t.Fatalf("code = %q, second upsert must win", got.Code)
	}

	var count int64
	if err := db.Model(&domain.Otp{}).Where("email = ?", "a@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want single row per email", count)
	}
}

func TestOtpDeleteByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewOtpRepository(db)
	ctx := context.Background()

	o := &domain.Otp{Email: "a@example.com", Code: "111111", ExpiresAt: time.Now().UTC().Add(10 * time.Minute)}
	if err := repo.Upsert(ctx, o); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.DeleteByEmail(ctx, "a@example.com"); err != nil {
		t.Fatalf("DeleteByEmail: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "a@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("otp still present: %v", err)
	}
}
