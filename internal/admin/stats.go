package admin

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Stats is the dashboard summary.
type Stats struct {
	TotalUsers     int `json:"total_users"`
	PendingUsers   int `json:"pending_users"`
	TotalGames     int `json:"total_games"`
	TotalLicenses  int `json:"total_licenses"`
	ActiveLicenses int `json:"active_licenses"`
	UsedLicenses   int `json:"used_licenses"`
}

//go:generate mockgen -source=stats.go -destination=mock_stats_test.go -package=admin

type Repository interface {
	Stats(ctx context.Context) (Stats, error)
}

type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.WithError(err).Error("load admin stats")
		return Stats{}, err
	}
	return st, nil
}
