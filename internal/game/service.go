package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultCategory   = "Uncategorized"
	steamSearchLimit  = 10
	steamStorePageURL = "https://store.steampowered.com/app/%d"
)

type Service struct {
	repo  Repository
	steam SteamCatalog
	log   logrus.FieldLogger
}

func NewService(repo Repository, steam SteamCatalog, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, steam: steam, log: log}
}

func (s *Service) List(ctx context.Context, q Query) ([]Game, int, error) {
	return s.repo.List(ctx, q)
}

// Get returns a game. Inactive games are hidden unless includeInactive.
func (s *Service) Get(ctx context.Context, id string, includeInactive bool) (Game, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Game{}, err
	}
	if !g.IsActive && !includeInactive {
		return Game{}, ErrNotFound
	}
	return g, nil
}

func (s *Service) Create(ctx context.Context, g *Game) error {
	normalize(g)
	if err := s.repo.Create(ctx, g); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"game_id": g.ID, "title": g.Title}).Info("game created")
	return nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Game, error) {
	if patch.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	g, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return Game{}, err
	}
	s.log.WithField("game_id", id).Info("game updated")
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("game_id", id).Info("game deleted")
	return nil
}

// ImportFromSteam creates a catalog entry from a Steam app's store details.
func (s *Service) ImportFromSteam(ctx context.Context, appID int64) (Game, error) {
	if _, err := s.repo.GetBySteamAppID(ctx, appID); err == nil {
		return Game{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Game{}, err
	}

	d, err := s.steam.GetAppDetails(ctx, appID)
	if err != nil {
		return Game{}, err
	}

	category := defaultCategory
	if len(d.Genres) > 0 {
		category = d.Genres[0]
	}
	screenshots := make([]string, 0, len(d.Screenshots))
	for _, sc := range d.Screenshots {
		if sc.Full != "" {
			screenshots = append(screenshots, sc.Full)
		}
	}

	g := &Game{
		Title:       d.Name,
		Description: d.Description(),
		ImageURL:    d.HeaderImage,
		DownloadURL: fmt.Sprintf(steamStorePageURL, appID),
		Category:    category,
		Tags:        mergeTags(d.Genres, d.Categories),
		IsActive:    true,
		SteamAppID:  &appID,
		Screenshots: screenshots,
	}
	if err := s.Create(ctx, g); err != nil {
		return Game{}, err
	}
	return *g, nil
}

func (s *Service) SearchSteam(ctx context.Context, query string) ([]SteamSearchResult, error) {
	results, err := s.steam.SearchApps(ctx, strings.TrimSpace(query), steamSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]SteamSearchResult, 0, len(results))
	for _, r := range results {
		out = append(out, SteamSearchResult{AppID: r.AppID, Name: r.Name})
	}
	return out, nil
}

type SteamSearchResult struct {
	AppID int64  `json:"app_id"`
	Name  string `json:"name"`
}

func normalize(g *Game) {
	g.Title = strings.TrimSpace(g.Title)
	if g.Category == "" {
		g.Category = defaultCategory
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if g.Screenshots == nil {
		g.Screenshots = []string{}
	}
}

// mergeTags concatenates lists, dropping case-insensitive duplicates.
func mergeTags(lists ...[]string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, list := range lists {
		for _, t := range list {
			key := strings.ToLower(t)
			if t == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t)
		}
	}
	return out
}
