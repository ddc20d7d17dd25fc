package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	GetByCode(ctx context.Context, code string) (*Customer, error)
	// ListCodesByPrefix returns every customer code starting with prefix,
	// including soft-deleted rows so freed codes are never reissued.
	ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	// List returns customers, scoped to an area when areaID > 0.
	List(ctx context.Context, areaID uint64) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, c *Customer) error
}
