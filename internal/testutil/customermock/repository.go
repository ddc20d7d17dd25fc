package customermock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "cashit-backend/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("customermock: method not implemented")

// Repo is a function-backed mock that satisfies customer.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.Customer) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByCodeFn         func(ctx context.Context, code string) (*domain.Customer, error)
	ListCodesByPrefixFn func(ctx context.Context, prefix string) ([]string, error)
	ListFn              func(ctx context.Context, areaID uint64) ([]domain.Customer, error)
	SaveFn              func(ctx context.Context, c *domain.Customer) error
	DeleteFn            func(ctx context.Context, c *domain.Customer) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if m.ListCodesByPrefixFn != nil {
		return m.ListCodesByPrefixFn(ctx, prefix)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context, areaID uint64) ([]domain.Customer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, areaID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, c *domain.Customer) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}
