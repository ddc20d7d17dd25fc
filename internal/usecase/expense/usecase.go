package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/expense"
	"cashit-backend/pkg/id"
)

type Usecase struct{ repo expense.Repository }

func NewUsecase(r expense.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	InvoiceNumber string    `json:"invoice_number"`
	Title         string    `json:"title"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Notes         string    `json:"notes"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*expense.Expense, error) {
	if strings.TrimSpace(in.Title) == "" || in.Amount <= 0 {
		return nil, errors.New("title and a positive amount are required")
	}
	e := &expense.Expense{
		ExpenseID:     id.NewID32(),
		InvoiceNumber: in.InvoiceNumber,
		Title:         strings.TrimSpace(in.Title),
		Amount:        in.Amount,
		Date:          in.Date,
		Notes:         in.Notes,
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Get(ctx context.Context, expenseID string) (*expense.Expense, error) {
	e, err := u.repo.GetByExpenseID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expense.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (u *Usecase) List(ctx context.Context) ([]expense.Expense, error) {
	return u.repo.List(ctx)
}

type UpdateInput struct {
	InvoiceNumber *string    `json:"invoice_number"`
	Title         *string    `json:"title"`
	Amount        *float64   `json:"amount"`
	Date          *time.Time `json:"date"`
	Notes         *string    `json:"notes"`
}

func (u *Usecase) Update(ctx context.Context, expenseID string, in UpdateInput) (*expense.Expense, error) {
	e, err := u.Get(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if in.InvoiceNumber != nil {
		e.InvoiceNumber = *in.InvoiceNumber
	}
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, errors.New("amount must be positive")
		}
		e.Amount = *in.Amount
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Notes != nil {
		e.Notes = *in.Notes
	}
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Delete(ctx context.Context, expenseID string) error {
	e, err := u.Get(ctx, expenseID)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, e)
}
