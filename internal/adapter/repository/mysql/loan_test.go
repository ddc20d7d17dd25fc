package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"cashit-backend/pkg/id"
)

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	c := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, id.NewID32(), c.ID, 5000, 5000)
	if l.ID == 0 {
		t.Fatal("auto-increment ID not set")
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.CustomerID != c.ID || got.Amount != 5000 {
		t.Fatalf("unexpected loan: %+v", got)
	}

	if _, err := repo.GetByLoanID(ctx, "ffffffffffffffffffffffffffffffff"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing loan err = %v", err)
	}
}

func TestLoanDuplicateLoanID(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	c := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, id.NewID32(), c.ID, 5000, 5000)
	dup := *l
	dup.ID = 0
	if err := repo.Create(ctx, &dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate loan_id err = %v, want ErrDuplicatedKey", err)
	}
}

func TestLoanGetActiveByCustomerID(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	c := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	// only settled loans so far
	seedLoan(t, db, id.NewID32(), c.ID, 5000, 0)
	if _, err := repo.GetActiveByCustomerID(ctx, c.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("settled book should report no active loan, got %v", err)
	}

	active := seedLoan(t, db, id.NewID32(), c.ID, 3000, 1200)
	got, err := repo.GetActiveByCustomerID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetActiveByCustomerID: %v", err)
	}
	if got.LoanID != active.LoanID {
		t.Fatalf("got %q, want %q", got.LoanID, active.LoanID)
	}
}

func TestLoanSaveAndSoftDelete(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	c := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, id.NewID32(), c.ID, 5000, 5000)
	l.PendingAmount = 2500
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.PendingAmount != 2500 {
		t.Fatalf("pending = %v after save", got.PendingAmount)
	}

	if err := repo.Delete(ctx, got); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, l.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("soft-deleted loan still visible: %v", err)
	}
	ls, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ls) != 0 {
		t.Fatalf("List returned %d rows after delete", len(ls))
	}
}

func TestLoanListByCustomerIDOrder(t *testing.T) {
	db := openTestDB(t)
	a := seedArea(t, db, "Pune", "PNE")
	c := seedCustomer(t, db, "CUST-PNE-1000", a.ID)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	first := seedLoan(t, db, id.NewID32(), c.ID, 5000, 0)
	second := seedLoan(t, db, id.NewID32(), c.ID, 3000, 0)

	ls, err := repo.ListByCustomerID(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListByCustomerID: %v", err)
	}
	if len(ls) != 2 {
		t.Fatalf("rows = %d", len(ls))
	}
	// same loan_date, so newest id first
	if ls[0].LoanID != second.LoanID || ls[1].LoanID != first.LoanID {
		t.Fatalf("order = %q, %q", ls[0].LoanID, ls[1].LoanID)
	}
}
