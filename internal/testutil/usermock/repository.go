package usermock

import (
	"context"

	"gorm.io/gorm"

	domain "cashit-backend/internal/domain/user"
)

var (
	_ domain.Repository    = (*Repo)(nil)
	_ domain.OtpRepository = (*OtpRepo)(nil)
)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]domain.User, error)
	SaveFn          func(ctx context.Context, u *domain.User) error
	DeleteFn        func(ctx context.Context, u *domain.User) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, u *domain.User) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, u)
	}
	return nil
}

// OtpRepo is a function-backed mock that satisfies user.OtpRepository.
type OtpRepo struct {
	UpsertFn        func(ctx context.Context, o *domain.Otp) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.Otp, error)
	DeleteByEmailFn func(ctx context.Context, email string) error
}

func (m *OtpRepo) Upsert(ctx context.Context, o *domain.Otp) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, o)
	}
	return nil
}

func (m *OtpRepo) GetByEmail(ctx context.Context, email string) (*domain.Otp, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *OtpRepo) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFn != nil {
		return m.DeleteByEmailFn(ctx, email)
	}
	return nil
}
