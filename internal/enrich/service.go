package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamevault/internal/library"
	"gamevault/internal/platform/steam"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoMatch is returned when no directory entry matches a name.
	ErrNoMatch = errors.New("game not found on steam")
	// ErrUpstreamUnavailable wraps network failures and bad responses.
	ErrUpstreamUnavailable = steam.ErrUnavailable
	// ErrUpstreamRejected is returned when Steam reports the id as invalid.
	ErrUpstreamRejected = steam.ErrRejected
)

// ExternalID is a Steam app id.
type ExternalID int64

// Catalog is the subset of the Steam client used for enrichment.
type Catalog interface {
	GetAppList(ctx context.Context) ([]steam.App, error)
	GetAppDetails(ctx context.Context, appID int64) (steam.AppDetails, error)
}

type Service struct {
	catalog Catalog
	cache   *DirectoryCache
	log     logrus.FieldLogger
}

// NewService wires catalog and cache. A nil cache gets a default one backed
// by catalog.GetAppList.
func NewService(catalog Catalog, cache *DirectoryCache, log logrus.FieldLogger) *Service {
	if cache == nil {
		cache = NewDirectoryCache(catalog.GetAppList, DefaultFreshness, nil)
	}
	return &Service{
		catalog: catalog,
		cache:   cache,
		log:     log.WithField("component", "enrich"),
	}
}

// Resolve maps a free-text name to a Steam app id.
func (s *Service) Resolve(ctx context.Context, name string) (ExternalID, error) {
	apps, err := s.cache.Apps(ctx)
	if err != nil {
		return 0, err
	}
	app, ok := Match(apps, name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoMatch, name)
	}
	s.log.WithFields(logrus.Fields{"name": name, "app_id": app.ID, "app_name": app.Name}).Debug("resolved steam app")
	return ExternalID(app.ID), nil
}

// FetchDetails loads and normalizes the metadata for id.
func (s *Service) FetchDetails(ctx context.Context, id ExternalID) (library.Metadata, error) {
	d, err := s.catalog.GetAppDetails(ctx, int64(id))
	if err != nil {
		return library.Metadata{}, err
	}
	return ToMetadata(d), nil
}

// EnrichName resolves name and fetches its metadata. Nothing is persisted.
func (s *Service) EnrichName(ctx context.Context, name string) (library.Metadata, error) {
	id, err := s.Resolve(ctx, name)
	if err != nil {
		return library.Metadata{}, err
	}
	return s.FetchDetails(ctx, id)
}

// Enrich is EnrichName using the entry's current display name.
func (s *Service) Enrich(ctx context.Context, g library.Game) (library.Metadata, error) {
	return s.EnrichName(ctx, g.Name)
}

// Match picks a directory entry for name. A case-insensitive exact match wins
// anywhere in the directory. Otherwise the first entry, in directory order,
// whose name contains name is used.
func Match(apps []steam.App, name string) (steam.App, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return steam.App{}, false
	}

	substring := -1
	for i := range apps {
		candidate := strings.ToLower(apps[i].Name)
		if candidate == needle {
			return apps[i], true
		}
		if substring < 0 && strings.Contains(candidate, needle) {
			substring = i
		}
	}
	if substring >= 0 {
		return apps[substring], true
	}
	return steam.App{}, false
}

// ToMetadata converts store details into a library snapshot.
func ToMetadata(d steam.AppDetails) library.Metadata {
	shots := make([]string, 0, len(d.Screenshots))
	for _, s := range d.Screenshots {
		if s.Thumbnail != "" {
			shots = append(shots, s.Thumbnail)
		}
	}
	return library.Metadata{
		SourceID:    d.AppID,
		Name:        d.Name,
		Description: d.Description(),
		Developers:  nonNil(d.Developers),
		Publishers:  nonNil(d.Publishers),
		ReleaseDate: d.ReleaseDate,
		HeaderImage: d.HeaderImage,
		Screenshots: shots,
		Genres:      nonNil(d.Genres),
		Categories:  nonNil(d.Categories),
		CriticScore: d.MetacriticScore,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
