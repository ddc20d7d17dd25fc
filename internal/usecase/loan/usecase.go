package loan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/ledger"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/domain/uow"
	"cashit-backend/pkg/id"
)

type Usecase struct {
	customers  customer.Repository
	loans      loan.Repository
	repayments repayment.Repository
	uow        uow.UnitOfWork
	now        func() time.Time
}

func NewUsecase(customers customer.Repository, loans loan.Repository, repayments repayment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{customers: customers, loans: loans, repayments: repayments, uow: tx, now: time.Now}
}

type CreateInput struct {
	CustomerCode string    `json:"customer_code"`
	Amount       float64   `json:"amount"`
	Rate         float64   `json:"rate"`
	TenureMonths int       `json:"tenure_months"`
	LoanDate     time.Time `json:"loan_date"`
	DocumentURL  string    `json:"document_url"`
}

type LoanDTO struct {
	LoanID         string                `json:"loan_id"`
	CustomerCode   string                `json:"customer_code"`
	CustomerName   string                `json:"customer_name,omitempty"`
	Amount         float64               `json:"amount"`
	Rate           float64               `json:"rate"`
	TenureMonths   int                   `json:"tenure_months"`
	LoanDate       time.Time             `json:"loan_date"`
	InterestAmount float64               `json:"interest_amount"`
	PendingAmount  float64               `json:"pending_amount"`
	Status         ledger.Status         `json:"status"`
	Overdue        bool                  `json:"overdue"`
	DocumentURL    string                `json:"document_url,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	Repayments     []repayment.Repayment `json:"repayments,omitempty"`
}

func (u *Usecase) toDTO(l *loan.Loan, c *customer.Customer) LoanDTO {
	dto := LoanDTO{
		LoanID:         l.LoanID,
		Amount:         l.Amount,
		Rate:           l.Rate,
		TenureMonths:   l.TenureMonths,
		LoanDate:       l.LoanDate,
		InterestAmount: l.InterestAmount,
		PendingAmount:  l.PendingAmount,
		Status:         ledger.StatusOf(l.PendingAmount),
		Overdue:        ledger.Overdue(l.LoanDate, l.TenureMonths, u.now()),
		DocumentURL:    l.DocumentURL,
		CreatedAt:      l.CreatedAt,
	}
	if c != nil {
		dto.CustomerCode = c.CustomerCode
		dto.CustomerName = c.Name
	}
	return dto
}

// Create issues a loan. The one-active-loan-per-customer check runs inside
// the insert transaction so concurrent requests cannot both pass it.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LoanDTO, error) {
	if in.Amount <= 0 || in.Rate < 0 || in.TenureMonths <= 0 {
		return nil, errors.New("amount, rate and tenure_months must be positive")
	}

	c, err := u.customers.GetByCode(ctx, in.CustomerCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}

	loanDate := in.LoanDate
	if loanDate.IsZero() {
		loanDate = u.now().UTC().Truncate(24 * time.Hour)
	}

	l := &loan.Loan{
		LoanID:         id.NewID32(),
		CustomerID:     c.ID,
		Amount:         in.Amount,
		Rate:           in.Rate,
		TenureMonths:   in.TenureMonths,
		LoanDate:       loanDate,
		InterestAmount: ledger.Interest(in.Amount, in.Rate, in.TenureMonths),
		PendingAmount:  in.Amount,
		DocumentURL:    in.DocumentURL,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Loans.GetActiveByCustomerID(ctx, c.ID)
		switch {
		case err == nil:
			return loan.ErrActiveLoanExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	dto := u.toDTO(l, c)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	c, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = nil
	}

	dto := u.toDTO(l, c)
	if rps, err := u.repayments.ListByLoanID(ctx, l.ID); err == nil {
		dto.Repayments = rps
	}
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := u.customers.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*customer.Customer, len(cs))
	for i := range cs {
		byID[cs[i].ID] = &cs[i]
	}

	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, u.toDTO(&ls[i], byID[ls[i].CustomerID]))
	}
	return out, nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerCode string) ([]LoanDTO, error) {
	c, err := u.customers.GetByCode(ctx, customerCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	ls, err := u.loans.ListByCustomerID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, u.toDTO(&ls[i], c))
	}
	return out, nil
}

type UpdateInput struct {
	Rate         *float64   `json:"rate"`
	TenureMonths *int       `json:"tenure_months"`
	LoanDate     *time.Time `json:"loan_date"`
	DocumentURL  *string    `json:"document_url"`
}

// Update adjusts loan terms; the flat interest is rederived from the new
// rate/tenure. Principal and pending amount are not editable here — pending
// moves only through repayments.
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateInput) (*LoanDTO, error) {
	var updated *loan.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if in.Rate != nil {
			if *in.Rate < 0 {
				return errors.New("rate must not be negative")
			}
			l.Rate = *in.Rate
		}
		if in.TenureMonths != nil {
			if *in.TenureMonths <= 0 {
				return errors.New("tenure_months must be positive")
			}
			l.TenureMonths = *in.TenureMonths
		}
		if in.LoanDate != nil {
			l.LoanDate = *in.LoanDate
		}
		if in.DocumentURL != nil {
			l.DocumentURL = *in.DocumentURL
		}
		l.InterestAmount = ledger.Interest(l.Amount, l.Rate, l.TenureMonths)
		updated = l
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}

	c, cerr := u.customers.GetByID(ctx, updated.CustomerID)
	if cerr != nil {
		c = nil
	}
	dto := u.toDTO(updated, c)
	return &dto, nil
}

// Delete removes the loan and its own repayments, nothing else.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if err := r.Repayments.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, l)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loan.ErrNotFound
	}
	return err
}
