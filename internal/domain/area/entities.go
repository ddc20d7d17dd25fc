package area

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("area not found")
	ErrDuplicateShortCode = errors.New("area short code already exists")
)

type Area struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ShortCode string    `gorm:"size:10;not null;uniqueIndex:ux_areas_short_code" json:"short_code"`
	Pincode   string    `gorm:"size:10" json:"pincode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Area) TableName() string { return "areas" }
