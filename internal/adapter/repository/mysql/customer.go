package mysql

import (
	"context"

	"gorm.io/gorm"

	customerDomain "cashit-backend/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CustomerRepository) GetByCode(ctx context.Context, code string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_code = ?", code).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	// Unscoped: codes of soft-deleted customers stay reserved.
	res := r.db.WithContext(ctx).Unscoped().
		Model(&customerDomain.Customer{}).
		Where("customer_code LIKE ?", prefix+"%").
		Pluck("customer_code", &codes)
	return codes, res.Error
}

func (r *CustomerRepository) List(ctx context.Context, areaID uint64) ([]customerDomain.Customer, error) {
	q := r.db.WithContext(ctx).Order("customer_code ASC")
	if areaID > 0 {
		q = q.Where("area_id = ?", areaID)
	}
	var out []customerDomain.Customer
	res := q.Find(&out)
	return out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
