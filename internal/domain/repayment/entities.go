package repayment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("repayment not found")
	ErrLoanMismatch = errors.New("repayment does not belong to loan")
)

type Method string

const (
	MethodCash Method = "CASH"
	MethodUPI  Method = "UPI"
	MethodBank Method = "BANK"
)

type Repayment struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID   string         `gorm:"size:32;not null;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID        uint64         `gorm:"not null;index:idx_repayments_loan" json:"-"`
	Amount        float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	DueDate       time.Time      `gorm:"type:date;not null" json:"due_date"`
	RepaymentDate *time.Time     `gorm:"type:date" json:"repayment_date,omitempty"`
	PaymentMethod Method         `gorm:"size:10;not null;default:'CASH'" json:"payment_method"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }

// Paid reports whether the installment has actually been collected.
func (r *Repayment) Paid() bool { return r.RepaymentDate != nil }
