package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsApproved   bool      `json:"is_approved"`
	LicenseKey   *string   `json:"license_key,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Location     *string   `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Patch holds the admin-editable fields. Nil fields are left untouched.
type Patch struct {
	IsApproved *bool   `json:"is_approved,omitempty"`
	IsAdmin    *bool   `json:"is_admin,omitempty"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location   *string `json:"location,omitempty" validate:"omitempty,max=100"`
	AvatarURL  *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func (p Patch) Empty() bool {
	return p.IsApproved == nil && p.IsAdmin == nil && p.Bio == nil && p.Location == nil && p.AvatarURL == nil
}
