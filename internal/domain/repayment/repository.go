package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	List(ctx context.Context) ([]Repayment, error)
	Save(ctx context.Context, r *Repayment) error
	Delete(ctx context.Context, r *Repayment) error
	DeleteByLoanID(ctx context.Context, loanID uint64) error
}
