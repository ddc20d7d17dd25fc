package mysql

import (
	"context"

	"gorm.io/gorm"

	areaDomain "cashit-backend/internal/domain/area"
)

type AreaRepository struct{ db *gorm.DB }

func NewAreaRepository(db *gorm.DB) *AreaRepository { return &AreaRepository{db: db} }

func (r *AreaRepository) Create(ctx context.Context, a *areaDomain.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AreaRepository) GetByID(ctx context.Context, id uint64) (*areaDomain.Area, error) {
	var out areaDomain.Area
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *AreaRepository) GetByShortCode(ctx context.Context, shortCode string) (*areaDomain.Area, error) {
	var out areaDomain.Area
	res := r.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&out)
	return &out, res.Error
}

func (r *AreaRepository) List(ctx context.Context) ([]areaDomain.Area, error) {
	var out []areaDomain.Area
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
