package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=user

type Repository interface {
	Create(ctx context.Context, u *User) error
	// CreateWithLicense inserts u and redeems licenseKey in one transaction.
	CreateWithLicense(ctx context.Context, u *User, licenseKey string) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, patch Patch) (User, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
}
