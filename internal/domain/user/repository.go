package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, u *User) error
}

type OtpRepository interface {
	// Upsert replaces any existing code for the email (one active OTP per email).
	Upsert(ctx context.Context, o *Otp) error
	GetByEmail(ctx context.Context, email string) (*Otp, error)
	DeleteByEmail(ctx context.Context, email string) error
}
