package auth

import (
	"context"

	"gamevault/internal/license"
	"gamevault/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=auth

type Users interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
	RegisterWithLicense(ctx context.Context, username, passwordHash, licenseKey string) (user.User, error)
}

type Licenses interface {
	Validate(ctx context.Context, key string) (license.License, error)
}
