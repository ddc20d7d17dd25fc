package expensemock

import (
	"context"

	"gorm.io/gorm"

	domain "cashit-backend/internal/domain/expense"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies expense.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, e *domain.Expense) error
	GetByExpenseIDFn func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListFn           func(ctx context.Context) ([]domain.Expense, error)
	SaveFn           func(ctx context.Context, e *domain.Expense) error
	DeleteFn         func(ctx context.Context, e *domain.Expense) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByExpenseID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDFn != nil {
		return m.GetByExpenseIDFn(ctx, expenseID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Expense, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Expense) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, e *domain.Expense) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, e)
	}
	return nil
}
