package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/ledger"
	domain "cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/uow"
	"cashit-backend/internal/testutil/customermock"
	"cashit-backend/internal/testutil/loanmock"
	"cashit-backend/internal/testutil/repaymentmock"
	"cashit-backend/internal/testutil/uowmock"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestUsecase(customers *customermock.Repo, loans *loanmock.Repo, repayments *repaymentmock.Repo) *Usecase {
	u := NewUsecase(customers, loans, repayments,
		uowmock.Passthrough(uow.Repos{Customers: customers, Loans: loans, Repayments: repayments}))
	u.now = fixedNow
	return u
}

func TestCreate_Happy(t *testing.T) {
	ctx := context.Background()
	cust := &customer.Customer{ID: 7, CustomerCode: "CUST-PNE-1000", Name: "Asha"}

	customers := &customermock.Repo{
		GetByCodeFn: func(_ context.Context, code string) (*customer.Customer, error) {
			if code != cust.CustomerCode {
				t.Fatalf("GetByCode got %q", code)
			}
			return cust, nil
		},
	}
	var created *domain.Loan
	loans := &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domain.Loan) error {
			created = l
			return nil
		},
	}
	u := newTestUsecase(customers, loans, &repaymentmock.Repo{})

	dto, err := u.Create(ctx, CreateInput{
		CustomerCode: cust.CustomerCode,
		Amount:       10000,
		Rate:         2,
		TenureMonths: 12,
		LoanDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil {
		t.Fatal("loan was not persisted")
	}
	if len(created.LoanID) != 32 {
		t.Fatalf("loan id length = %d, want 32", len(created.LoanID))
	}
	if created.InterestAmount != 2400 {
		t.Fatalf("interest = %v, want 2400", created.InterestAmount)
	}
	if created.PendingAmount != 10000 {
		t.Fatalf("pending = %v, want principal", created.PendingAmount)
	}
	if dto.Status != ledger.StatusActive {
		t.Fatalf("status = %v, want ACTIVE", dto.Status)
	}
	if dto.CustomerName != "Asha" {
		t.Fatalf("customer name = %q", dto.CustomerName)
	}
}

func TestCreate_RejectsSecondActiveLoan(t *testing.T) {
	cust := &customer.Customer{ID: 7, CustomerCode: "CUST-PNE-1000"}
	customers := &customermock.Repo{
		GetByCodeFn: func(context.Context, string) (*customer.Customer, error) { return cust, nil },
	}
	loans := &loanmock.Repo{
		GetActiveByCustomerIDFn: func(_ context.Context, id uint64) (*domain.Loan, error) {
			return &domain.Loan{ID: 1, CustomerID: id, PendingAmount: 500}, nil
		},
		CreateFn: func(context.Context, *domain.Loan) error {
			t.Fatal("Create must not run when an active loan exists")
			return nil
		},
	}
	u := newTestUsecase(customers, loans, &repaymentmock.Repo{})

	_, err := u.Create(context.Background(), CreateInput{
		CustomerCode: cust.CustomerCode, Amount: 100, Rate: 1, TenureMonths: 6,
	})
	if !errors.Is(err, domain.ErrActiveLoanExists) {
		t.Fatalf("err = %v, want ErrActiveLoanExists", err)
	}
}

func TestCreate_UnknownCustomer(t *testing.T) {
	u := newTestUsecase(&customermock.Repo{}, &loanmock.Repo{}, &repaymentmock.Repo{})

	_, err := u.Create(context.Background(), CreateInput{
		CustomerCode: "CUST-NOPE-1000", Amount: 100, Rate: 1, TenureMonths: 6,
	})
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("err = %v, want customer.ErrNotFound", err)
	}
}

func TestCreate_RejectsBadTerms(t *testing.T) {
	u := newTestUsecase(&customermock.Repo{}, &loanmock.Repo{}, &repaymentmock.Repo{})

	cases := []CreateInput{
		{CustomerCode: "C", Amount: 0, Rate: 1, TenureMonths: 6},
		{CustomerCode: "C", Amount: 100, Rate: -1, TenureMonths: 6},
		{CustomerCode: "C", Amount: 100, Rate: 1, TenureMonths: 0},
	}
	for _, in := range cases {
		if _, err := u.Create(context.Background(), in); err == nil {
			t.Fatalf("Create(%+v): expected error", in)
		}
	}
}

func TestUpdate_RederivesInterest(t *testing.T) {
	existing := &domain.Loan{
		ID: 3, LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		CustomerID: 7, Amount: 5000, Rate: 2, TenureMonths: 12,
		InterestAmount: 1200, PendingAmount: 5000,
		LoanDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	var saved *domain.Loan
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if loanID != existing.LoanID {
				t.Fatalf("lock requested for %q", loanID)
			}
			cp := *existing
			return &cp, nil
		},
		SaveFn: func(_ context.Context, l *domain.Loan) error {
			saved = l
			return nil
		},
	}
	customers := &customermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*customer.Customer, error) {
			return &customer.Customer{ID: 7, CustomerCode: "CUST-PNE-1000"}, nil
		},
	}
	u := newTestUsecase(customers, loans, &repaymentmock.Repo{})

	newRate := 3.0
	dto, err := u.Update(context.Background(), existing.LoanID, UpdateInput{Rate: &newRate})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	// 5000 * 3 * 12 / 100
	if saved == nil || saved.InterestAmount != 1800 {
		t.Fatalf("saved interest = %+v, want 1800", saved)
	}
	if dto.InterestAmount != 1800 {
		t.Fatalf("dto interest = %v, want 1800", dto.InterestAmount)
	}
	if dto.PendingAmount != 5000 {
		t.Fatalf("pending must not move on term edit, got %v", dto.PendingAmount)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(context.Context, string) (*domain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	u := newTestUsecase(&customermock.Repo{}, loans, &repaymentmock.Repo{})

	if _, err := u.Update(context.Background(), "missing", UpdateInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_DerivesStatusAndOverdue(t *testing.T) {
	// tenure ended 2025-01-10 + 3 months = 2025-04-10, before fixedNow
	l := &domain.Loan{
		ID: 3, LoanID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", CustomerID: 7,
		Amount: 5000, Rate: 2, TenureMonths: 3, PendingAmount: 0,
		LoanDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*domain.Loan, error) { return l, nil },
	}
	customers := &customermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*customer.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	u := newTestUsecase(customers, loans, &repaymentmock.Repo{})

	dto, err := u.Get(context.Background(), l.LoanID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dto.Status != ledger.StatusClosed {
		t.Fatalf("status = %v, want CLOSED", dto.Status)
	}
	if !dto.Overdue {
		t.Fatal("loan past its tenure should be overdue")
	}
}

func TestDelete_RemovesOwnRepayments(t *testing.T) {
	l := &domain.Loan{ID: 9, LoanID: "cccccccccccccccccccccccccccccccc"}
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(context.Context, string) (*domain.Loan, error) { return l, nil },
	}
	var deletedRepayments, deletedLoan bool
	repayments := &repaymentmock.Repo{
		DeleteByLoanIDFn: func(_ context.Context, loanID uint64) error {
			if loanID != l.ID {
				t.Fatalf("DeleteByLoanID got %d", loanID)
			}
			deletedRepayments = true
			return nil
		},
	}
	loans.DeleteFn = func(context.Context, *domain.Loan) error {
		if !deletedRepayments {
			t.Fatal("repayments must go before the loan")
		}
		deletedLoan = true
		return nil
	}
	u := newTestUsecase(&customermock.Repo{}, loans, repayments)

	if err := u.Delete(context.Background(), l.LoanID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deletedLoan {
		t.Fatal("loan not deleted")
	}
}
