package library

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateEntry is returned when a path is already in the library.
	ErrDuplicateEntry = errors.New("game already exists in library")
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("game not found")
	// ErrInvalidPath is returned for an empty path.
	ErrInvalidPath = errors.New("game path is required")
	// ErrStoreRead is returned when the backing document cannot be read or parsed.
	ErrStoreRead = errors.New("library store unreadable")
)

// Game is one locally registered launchable item.
type Game struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	AddedAt  time.Time `json:"addedAt"`
	Metadata *Metadata `json:"metadata"`
}

// Metadata is a snapshot of one enrichment call. It is always replaced as a
// whole.
type Metadata struct {
	SourceID    int64    `json:"sourceId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Developers  []string `json:"developers"`
	Publishers  []string `json:"publishers"`
	ReleaseDate string   `json:"releaseDate"`
	HeaderImage string   `json:"headerImage"`
	Screenshots []string `json:"screenshots"`
	Genres      []string `json:"genres"`
	Categories  []string `json:"categories"`
	CriticScore *int     `json:"criticScore,omitempty"`
}

// Patch lists the editable fields of a Game. Nil fields are left untouched.
type Patch struct {
	Name     *string   `json:"name,omitempty"`
	Path     *string   `json:"path,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

func (p Patch) apply(g *Game) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Path != nil {
		g.Path = *p.Path
	}
	if p.Metadata != nil {
		md := *p.Metadata
		g.Metadata = &md
	}
}

type document struct {
	Games []Game `json:"games"`
}
