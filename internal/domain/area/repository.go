package area

import "context"

type Repository interface {
	Create(ctx context.Context, a *Area) error
	GetByID(ctx context.Context, id uint64) (*Area, error)
	GetByShortCode(ctx context.Context, shortCode string) (*Area, error)
	List(ctx context.Context) ([]Area, error)
}
