package license

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=license

// Repository defines the contract for license storage.
type Repository interface {
	List(ctx context.Context) ([]License, error)
	GetByKey(ctx context.Context, key string) (License, error)
	Create(ctx context.Context, l *License) error
	SetActive(ctx context.Context, id string, active bool) (License, error)
}
