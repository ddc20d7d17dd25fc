package uow

import (
	"context"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
)

type Repos struct {
	Areas      area.Repository
	Customers  customer.Repository
	Loans      loan.Repository
	Repayments repayment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
