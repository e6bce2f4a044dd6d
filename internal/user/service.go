package user

import (
	"context"
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

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, strings.TrimSpace(username))
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// RegisterWithLicense creates an unapproved, non-admin user and redeems the
// license in the same transaction.
func (s *Service) RegisterWithLicense(ctx context.Context, username, passwordHash, licenseKey string) (User, error) {
	key := strings.TrimSpace(licenseKey)
	u := &User{
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		LicenseKey:   &key,
	}
	if err := s.repo.CreateWithLicense(ctx, u, key); err != nil {
		return User{}, err
	}
	s.log.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered, awaiting approval")
	return *u, nil
}

func (s *Service) Approve(ctx context.Context, id string, approved bool) (User, error) {
	return s.Update(ctx, id, Patch{IsApproved: &approved})
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (User, error) {
	if patch.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	u, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return User{}, err
	}
	s.log.WithField("user_id", id).Info("user updated")
	return u, nil
}

// EnsureAdmin makes sure an approved admin named username exists with the
// given password hash.
func (s *Service) EnsureAdmin(ctx context.Context, username, passwordHash string) (User, error) {
	existing, err := s.repo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, ErrNotFound):
		u := &User{
			Username:     username,
			PasswordHash: passwordHash,
			IsAdmin:      true,
			IsApproved:   true,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return User{}, err
		}
		s.log.WithField("username", username).Info("admin account created")
		return *u, nil
	case err != nil:
		return User{}, err
	}

	if err := s.repo.SetPassword(ctx, existing.ID, passwordHash); err != nil {
		return User{}, err
	}
	yes := true
	return s.repo.Update(ctx, existing.ID, Patch{IsAdmin: &yes, IsApproved: &yes})
}
