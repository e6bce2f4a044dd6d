package game

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("game not found")
	ErrAlreadyExists = errors.New("steam app already imported")
)

// Game is a storefront catalog entry.
type Game struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	DownloadURL   string    `json:"download_url"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	IsActive      bool      `json:"is_active"`
	SteamAppID    *int64    `json:"steam_app_id,omitempty"`
	Screenshots   []string  `json:"screenshots"`
	AverageRating int       `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
}

// Query defines filters and pagination for listing games.
type Query struct {
	Category        string
	Q               string
	Featured        *bool
	IncludeInactive bool
	Limit           int
	Offset          int
}

// Patch holds the editable fields. Nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty" validate:"omitempty,url"`
	DownloadURL *string   `json:"download_url,omitempty" validate:"omitempty,url"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	Tags        *[]string `json:"tags,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	Screenshots *[]string `json:"screenshots,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil && p.DownloadURL == nil &&
		p.Category == nil && p.Tags == nil && p.Featured == nil && p.IsActive == nil && p.Screenshots == nil
}
