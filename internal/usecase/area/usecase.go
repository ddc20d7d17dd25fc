package area

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/area"
)

type Usecase struct{ repo area.Repository }

func NewUsecase(r area.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Pincode   string `json:"pincode"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*area.Area, error) {
	a := &area.Area{
		Name:      strings.TrimSpace(in.Name),
		ShortCode: strings.ToUpper(strings.TrimSpace(in.ShortCode)),
		Pincode:   strings.TrimSpace(in.Pincode),
	}
	if a.Name == "" || a.ShortCode == "" {
		return nil, errors.New("name and short_code are required")
	}
	if err := u.repo.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, area.ErrDuplicateShortCode
		}
		return nil, err
	}
	return a, nil
}

func (u *Usecase) List(ctx context.Context) ([]area.Area, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) GetByShortCode(ctx context.Context, shortCode string) (*area.Area, error) {
	a, err := u.repo.GetByShortCode(ctx, strings.ToUpper(shortCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, area.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
