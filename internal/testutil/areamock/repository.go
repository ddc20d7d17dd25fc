package areamock

import (
	"context"

	"gorm.io/gorm"

	domain "cashit-backend/internal/domain/area"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies area.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Area) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Area, error)
	GetByShortCodeFn func(ctx context.Context, shortCode string) (*domain.Area, error)
	ListFn           func(ctx context.Context) ([]domain.Area, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Area) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Area, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByShortCode(ctx context.Context, shortCode string) (*domain.Area, error) {
	if m.GetByShortCodeFn != nil {
		return m.GetByShortCodeFn(ctx, shortCode)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Area, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
