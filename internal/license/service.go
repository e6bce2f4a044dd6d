package license

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, log: log}
}

// GenerateKey returns 16 random bytes as uppercase hex.
func GenerateKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// Create stores a new active license. An empty key is generated.
func (s *Service) Create(ctx context.Context, key string) (License, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		generated, err := GenerateKey()
		if err != nil {
			return License{}, err
		}
		key = generated
	}

	l := &License{Key: key, IsActive: true}
	if err := s.repo.Create(ctx, l); err != nil {
		return License{}, err
	}
	s.log.WithField("license_id", l.ID).Info("license created")
	return *l, nil
}

func (s *Service) List(ctx context.Context) ([]License, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) (License, error) {
	l, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return License{}, err
	}
	s.log.WithFields(logrus.Fields{"license_id": id, "active": active}).Info("license updated")
	return l, nil
}

// Validate returns the license for key if it can still be redeemed.
func (s *Service) Validate(ctx context.Context, key string) (License, error) {
	l, err := s.repo.GetByKey(ctx, strings.TrimSpace(key))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return License{}, ErrInvalidKey
		}
		return License{}, err
	}
	if err := l.Check(); err != nil {
		return License{}, err
	}
	return l, nil
}
