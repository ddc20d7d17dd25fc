package customer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/uow"
	"cashit-backend/internal/infrastructure/storage"
	"cashit-backend/pkg/qr"
)

// codeAttempts bounds the retry loop when two onboarding requests race for
// the same area sequence; the unique index rejects the loser.
const codeAttempts = 3

type Usecase struct {
	areas     area.Repository
	customers customer.Repository
	loans     loan.Repository
	uow       uow.UnitOfWork
	files     storage.Store
}

func NewUsecase(areas area.Repository, customers customer.Repository, loans loan.Repository, tx uow.UnitOfWork, files storage.Store) *Usecase {
	return &Usecase{areas: areas, customers: customers, loans: loans, uow: tx, files: files}
}

type OnboardInput struct {
	Name          string     `json:"name"`
	GuardianName  string     `json:"guardian_name"`
	Gender        string     `json:"gender"`
	DOB           *time.Time `json:"dob"`
	Aadhar        string     `json:"aadhar"`
	Mobile        string     `json:"mobile"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	PhotoURL      string     `json:"photo_url"`
	DocumentURL   string     `json:"document_url"`
	AreaShortCode string     `json:"area_short_code"`
}

func (u *Usecase) Onboard(ctx context.Context, in OnboardInput) (*customer.Customer, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Mobile) == "" {
		return nil, errors.New("name and mobile are required")
	}

	a, err := u.areas.GetByShortCode(ctx, strings.ToUpper(in.AreaShortCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, area.ErrNotFound
		}
		return nil, err
	}

	c := &customer.Customer{
		Name:         strings.TrimSpace(in.Name),
		GuardianName: strings.TrimSpace(in.GuardianName),
		Gender:       in.Gender,
		DOB:          in.DOB,
		Aadhar:       in.Aadhar,
		Mobile:       in.Mobile,
		Email:        strings.TrimSpace(in.Email),
		Address:      in.Address,
		PhotoURL:     in.PhotoURL,
		DocumentURL:  in.DocumentURL,
		AreaID:       a.ID,
	}

	prefix := customer.CodePrefix(a.ShortCode)
	for attempt := 0; ; attempt++ {
		err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
			codes, err := r.Customers.ListCodesByPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			c.CustomerCode = customer.NextCode(a.ShortCode, codes)
			return r.Customers.Create(ctx, c)
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < codeAttempts-1 {
			continue
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, customer.ErrDuplicateCode
		}
		return nil, err
	}

	u.attachQR(ctx, c)
	return c, nil
}

// attachQR renders the customer code as a PNG and stores it. Failures are
// logged, not fatal: the customer record is already committed.
func (u *Usecase) attachQR(ctx context.Context, c *customer.Customer) {
	if u.files == nil {
		return
	}
	png, err := qr.PNG(c.CustomerCode, 256)
	if err != nil {
		log.Printf("qr encode for %s: %v", c.CustomerCode, err)
		return
	}
	url, err := u.files.Save(fmt.Sprintf("%s.png", c.CustomerCode), bytes.NewReader(png))
	if err != nil {
		log.Printf("qr store for %s: %v", c.CustomerCode, err)
		return
	}
	c.QRCodeURL = url
	if err := u.customers.Save(ctx, c); err != nil {
		log.Printf("qr url save for %s: %v", c.CustomerCode, err)
	}
}

func (u *Usecase) Get(ctx context.Context, code string) (*customer.Customer, error) {
	c, err := u.customers.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// List returns customers, optionally scoped by area short code.
func (u *Usecase) List(ctx context.Context, areaShortCode string) ([]customer.Customer, error) {
	var areaID uint64
	if areaShortCode != "" {
		a, err := u.areas.GetByShortCode(ctx, strings.ToUpper(areaShortCode))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, area.ErrNotFound
			}
			return nil, err
		}
		areaID = a.ID
	}
	return u.customers.List(ctx, areaID)
}

type UpdateInput struct {
	Name         *string    `json:"name"`
	GuardianName *string    `json:"guardian_name"`
	Gender       *string    `json:"gender"`
	DOB          *time.Time `json:"dob"`
	Aadhar       *string    `json:"aadhar"`
	Mobile       *string    `json:"mobile"`
	Email        *string    `json:"email"`
	Address      *string    `json:"address"`
	PhotoURL     *string    `json:"photo_url"`
	DocumentURL  *string    `json:"document_url"`
}

// Update mutates profile fields. The customer code is immutable.
func (u *Usecase) Update(ctx context.Context, code string, in UpdateInput) (*customer.Customer, error) {
	c, err := u.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.GuardianName != nil {
		c.GuardianName = *in.GuardianName
	}
	if in.Gender != nil {
		c.Gender = *in.Gender
	}
	if in.DOB != nil {
		c.DOB = in.DOB
	}
	if in.Aadhar != nil {
		c.Aadhar = *in.Aadhar
	}
	if in.Mobile != nil {
		c.Mobile = *in.Mobile
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.PhotoURL != nil {
		c.PhotoURL = *in.PhotoURL
	}
	if in.DocumentURL != nil {
		c.DocumentURL = *in.DocumentURL
	}
	if err := u.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete soft-deletes the customer. Refused while a loan is outstanding.
func (u *Usecase) Delete(ctx context.Context, code string) error {
	c, err := u.Get(ctx, code)
	if err != nil {
		return err
	}
	_, err = u.loans.GetActiveByCustomerID(ctx, c.ID)
	switch {
	case err == nil:
		return customer.ErrHasActiveLoan
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}
	return u.customers.Delete(ctx, c)
}
