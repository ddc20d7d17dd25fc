package expense

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("expense not found")

// Operating expenses, unrelated to the loan book.
type Expense struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	ExpenseID     string         `gorm:"size:32;not null;uniqueIndex:ux_expenses_expense_id" json:"expense_id"`
	InvoiceNumber string         `gorm:"size:50" json:"invoice_number"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Amount        float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	Date          time.Time      `gorm:"type:date;not null" json:"date"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Expense) TableName() string { return "expenses" }
