package game

import (
	"context"

	"gamevault/internal/platform/steam"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=game

type Repository interface {
	List(ctx context.Context, q Query) ([]Game, int, error)
	GetByID(ctx context.Context, id string) (Game, error)
	GetBySteamAppID(ctx context.Context, appID int64) (Game, error)
	Create(ctx context.Context, g *Game) error
	Update(ctx context.Context, id string, patch Patch) (Game, error)
	Delete(ctx context.Context, id string) error
}

// SteamCatalog is the subset of the Steam client used for imports.
type SteamCatalog interface {
	GetAppDetails(ctx context.Context, appID int64) (steam.AppDetails, error)
	SearchApps(ctx context.Context, query string, limit int) ([]steam.SearchResult, error)
}
