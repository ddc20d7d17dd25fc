package repayment

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/ledger"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/domain/uow"
	"cashit-backend/pkg/id"
)

// Notifier delivers the loan-closed mail. Nil-able; delivery is best effort.
type Notifier interface {
	SendLoanClosed(to, customerName, loanID string, amount float64) error
}

type Usecase struct {
	repayments repayment.Repository
	loans      loan.Repository
	customers  customer.Repository
	uow        uow.UnitOfWork
	notifier   Notifier
}

func NewUsecase(repayments repayment.Repository, loans loan.Repository, customers customer.Repository, tx uow.UnitOfWork, notifier Notifier) *Usecase {
	return &Usecase{repayments: repayments, loans: loans, customers: customers, uow: tx, notifier: notifier}
}

type ApplyInput struct {
	// RepaymentID empty means create; otherwise the row to edit.
	RepaymentID   string
	LoanID        string
	Amount        float64
	DueDate       time.Time
	RepaymentDate *time.Time
	PaymentMethod repayment.Method
}

type RepaymentDTO struct {
	RepaymentID   string           `json:"repayment_id"`
	LoanID        string           `json:"loan_id"`
	Amount        float64          `json:"amount"`
	DueDate       time.Time        `json:"due_date"`
	RepaymentDate *time.Time       `json:"repayment_date,omitempty"`
	PaymentMethod repayment.Method `json:"payment_method"`
	PendingAmount float64          `json:"pending_amount"`
	LoanStatus    ledger.Status    `json:"loan_status"`
}

// Apply creates or edits a repayment and keeps the parent loan's pending
// amount consistent. Both paths run the same transaction: lock the loan row,
// write the repayment, rederive pending from the full sibling sum, save the
// loan. Closing the loan triggers the customer notification after commit.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*RepaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	switch in.PaymentMethod {
	case repayment.MethodCash, repayment.MethodUPI, repayment.MethodBank, "":
	default:
		return nil, errors.New("unknown payment method")
	}

	var (
		dto       *RepaymentDTO
		wasClosed bool
		closed    *loan.Loan
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		wasClosed = ledger.StatusOf(l.PendingAmount) == ledger.StatusClosed

		var rp *repayment.Repayment
		if in.RepaymentID == "" {
			rp = &repayment.Repayment{
				RepaymentID:   id.NewID32(),
				LoanID:        l.ID,
				Amount:        in.Amount,
				DueDate:       in.DueDate,
				RepaymentDate: in.RepaymentDate,
				PaymentMethod: in.PaymentMethod,
			}
			if rp.PaymentMethod == "" {
				rp.PaymentMethod = repayment.MethodCash
			}
			if err := r.Repayments.Create(ctx, rp); err != nil {
				return err
			}
		} else {
			var err error
			rp, err = r.Repayments.GetByRepaymentID(ctx, in.RepaymentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return repayment.ErrNotFound
				}
				return err
			}
			if rp.LoanID != l.ID {
				return repayment.ErrLoanMismatch
			}
			rp.Amount = in.Amount
			if !in.DueDate.IsZero() {
				rp.DueDate = in.DueDate
			}
			if in.RepaymentDate != nil {
				rp.RepaymentDate = in.RepaymentDate
			}
			if in.PaymentMethod != "" {
				rp.PaymentMethod = in.PaymentMethod
			}
			if err := r.Repayments.Save(ctx, rp); err != nil {
				return err
			}
		}

		siblings, err := r.Repayments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		amounts := make([]float64, 0, len(siblings))
		for _, s := range siblings {
			amounts = append(amounts, s.Amount)
		}
		l.PendingAmount = ledger.Pending(l.Amount, amounts)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		if !wasClosed && ledger.StatusOf(l.PendingAmount) == ledger.StatusClosed {
			closed = l
		}
		dto = &RepaymentDTO{
			RepaymentID:   rp.RepaymentID,
			LoanID:        l.LoanID,
			Amount:        rp.Amount,
			DueDate:       rp.DueDate,
			RepaymentDate: rp.RepaymentDate,
			PaymentMethod: rp.PaymentMethod,
			PendingAmount: l.PendingAmount,
			LoanStatus:    ledger.StatusOf(l.PendingAmount),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}

	if closed != nil {
		u.notifyClosed(ctx, closed)
	}
	return dto, nil
}

func (u *Usecase) notifyClosed(ctx context.Context, l *loan.Loan) {
	if u.notifier == nil {
		return
	}
	c, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil || c.Email == "" {
		return
	}
	if err := u.notifier.SendLoanClosed(c.Email, c.Name, l.LoanID, l.Amount); err != nil {
		log.Printf("loan-closed mail for %s: %v", l.LoanID, err)
	}
}

// MarkPaid records the collection date on an installment without touching
// the amount.
func (u *Usecase) MarkPaid(ctx context.Context, repaymentID string, paidAt time.Time, method repayment.Method) (*RepaymentDTO, error) {
	rp, err := u.repayments.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repayment.ErrNotFound
		}
		return nil, err
	}
	l, err := u.loans.GetByID(ctx, rp.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	paid := paidAt.UTC()
	return u.Apply(ctx, ApplyInput{
		RepaymentID:   repaymentID,
		LoanID:        l.LoanID,
		Amount:        rp.Amount,
		RepaymentDate: &paid,
		PaymentMethod: method,
	})
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]repayment.Repayment, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return u.repayments.ListByLoanID(ctx, l.ID)
}

// List returns every repayment with its parent loan's public id and current
// balance attached.
func (u *Usecase) List(ctx context.Context) ([]RepaymentDTO, error) {
	rps, err := u.repayments.List(ctx)
	if err != nil {
		return nil, err
	}
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*loan.Loan, len(ls))
	for i := range ls {
		byID[ls[i].ID] = &ls[i]
	}

	out := make([]RepaymentDTO, 0, len(rps))
	for _, rp := range rps {
		dto := RepaymentDTO{
			RepaymentID:   rp.RepaymentID,
			Amount:        rp.Amount,
			DueDate:       rp.DueDate,
			RepaymentDate: rp.RepaymentDate,
			PaymentMethod: rp.PaymentMethod,
		}
		if l, ok := byID[rp.LoanID]; ok {
			dto.LoanID = l.LoanID
			dto.PendingAmount = l.PendingAmount
			dto.LoanStatus = ledger.StatusOf(l.PendingAmount)
		}
		out = append(out, dto)
	}
	return out, nil
}

// Delete removes a repayment and reapplies the sibling sum to the loan.
func (u *Usecase) Delete(ctx context.Context, repaymentID string) error {
	rp, err := u.repayments.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repayment.ErrNotFound
		}
		return err
	}
	l, err := u.loans.GetByID(ctx, rp.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		return err
	}

	return u.uow.WithinLoanTx(ctx, l.LoanID, func(r uow.Repos, l *loan.Loan) error {
		target, err := r.Repayments.GetByRepaymentID(ctx, repaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repayment.ErrNotFound
			}
			return err
		}
		if err := r.Repayments.Delete(ctx, target); err != nil {
			return err
		}
		siblings, err := r.Repayments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		amounts := make([]float64, 0, len(siblings))
		for _, s := range siblings {
			amounts = append(amounts, s.Amount)
		}
		l.PendingAmount = ledger.Pending(l.Amount, amounts)
		return r.Loans.Save(ctx, l)
	})
}
