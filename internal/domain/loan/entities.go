package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("loan not found")
	ErrActiveLoanExists = errors.New("customer already has an active loan")
)

type Loan struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID         string         `gorm:"size:32;not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID     uint64         `gorm:"not null;index:idx_loans_customer" json:"-"`
	Amount         float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	Rate           float64        `gorm:"type:decimal(6,2);not null" json:"rate"`
	TenureMonths   int            `gorm:"not null" json:"tenure_months"`
	LoanDate       time.Time      `gorm:"type:date;not null" json:"loan_date"`
	InterestAmount float64        `gorm:"type:decimal(18,2);not null" json:"interest_amount"`
	PendingAmount  float64        `gorm:"type:decimal(18,2);not null" json:"pending_amount"`
	DocumentURL    string         `gorm:"type:text" json:"document_url,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
