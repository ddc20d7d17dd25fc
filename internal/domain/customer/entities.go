package customer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrDuplicateCode = errors.New("customer code already exists")
	ErrHasActiveLoan = errors.New("customer has an active loan")
)

type Customer struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	CustomerCode string         `gorm:"size:32;not null;uniqueIndex:ux_customers_code" json:"customer_code"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	GuardianName string         `gorm:"size:100" json:"guardian_name"`
	Gender       string         `gorm:"size:10" json:"gender"`
	DOB          *time.Time     `gorm:"type:date" json:"dob,omitempty"`
	Aadhar       string         `gorm:"size:16;index" json:"aadhar"`
	Mobile       string         `gorm:"size:15;not null;index" json:"mobile"`
	Email        string         `gorm:"size:100" json:"email,omitempty"`
	Address      string         `gorm:"type:text" json:"address"`
	PhotoURL     string         `gorm:"type:text" json:"photo_url,omitempty"`
	DocumentURL  string         `gorm:"type:text" json:"document_url,omitempty"`
	QRCodeURL    string         `gorm:"type:text" json:"qr_code_url,omitempty"`
	AreaID       uint64         `gorm:"not null;index:idx_customers_area" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string { return "customers" }
