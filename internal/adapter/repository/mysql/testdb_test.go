package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/expense"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/domain/user"
)

// openTestDB gives each test its own in-memory sqlite with the full schema.
// TranslateError matches production, so unique-index violations come back as
// gorm.ErrDuplicatedKey here too.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&area.Area{},
		&customer.Customer{},
		&loan.Loan{},
		&repayment.Repayment{},
		&user.User{},
		&user.Otp{},
		&expense.Expense{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedArea(t *testing.T, db *gorm.DB, name, code string) *area.Area {
	t.Helper()
	a := &area.Area{Name: name, ShortCode: code}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed area: %v", err)
	}
	return a
}

func seedCustomer(t *testing.T, db *gorm.DB, code string, areaID uint64) *customer.Customer {
	t.Helper()
	c := &customer.Customer{CustomerCode: code, Name: "Asha", Mobile: "9876543210", AreaID: areaID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedLoan(t *testing.T, db *gorm.DB, loanID string, customerID uint64, amount, pending float64) *loan.Loan {
	t.Helper()
	l := &loan.Loan{
		LoanID:         loanID,
		CustomerID:     customerID,
		Amount:         amount,
		Rate:           2,
		TenureMonths:   12,
		LoanDate:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		InterestAmount: amount * 2 * 12 / 100,
		PendingAmount:  pending,
	}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}
