package license

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("license not found")
	ErrAlreadyExists = errors.New("license key already exists")
	ErrInvalidKey    = errors.New("invalid license key")
	ErrInactive      = errors.New("license key is inactive")
	ErrUsed          = errors.New("license key already used")
)

// License gates registration. A key can be redeemed exactly once.
type License struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	IsActive  bool       `json:"is_active"`
	UsedBy    *string    `json:"used_by"`
	CreatedAt time.Time  `json:"created_at"`
	UsedAt    *time.Time `json:"used_at"`
}

// Check reports why l cannot be redeemed, or nil.
func (l License) Check() error {
	if !l.IsActive {
		return ErrInactive
	}
	if l.UsedBy != nil {
		return ErrUsed
	}
	return nil
}
