package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamevault/internal/platform/crypto"
	"gamevault/internal/user"

	"github.com/sirupsen/logrus"
)

const DefaultTokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPendingApproval    = errors.New("account pending approval")
)

type Service struct {
	secret   string
	ttl      time.Duration
	users    Users
	licenses Licenses
	log      logrus.FieldLogger
}

func NewService(secret string, ttl time.Duration, users Users, licenses Licenses, log logrus.FieldLogger) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{secret: secret, ttl: ttl, users: users, licenses: licenses, log: log}
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int       `json:"expires_in"`
	User        user.User `json:"user"`
	IsAdmin     bool      `json:"is_admin"`
}

// Register creates an unapproved account bound to licenseKey.
func (s *Service) Register(ctx context.Context, username, password, licenseKey string) (user.User, error) {
	username = strings.TrimSpace(username)
	if err := crypto.ValidatePasswordStrength(password); err != nil {
		return user.User{}, err
	}

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return user.User{}, user.ErrUsernameTaken
	case !errors.Is(err, user.ErrNotFound):
		return user.User{}, err
	}

	if _, err := s.licenses.Validate(ctx, licenseKey); err != nil {
		return user.User{}, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	return s.users.RegisterWithLicense(ctx, username, hash, licenseKey)
}

func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if !crypto.VerifyPassword(u.PasswordHash, password) {
		s.log.WithField("username", u.Username).Warn("failed login")
		return LoginResult{}, ErrInvalidCredentials
	}
	if !u.IsApproved {
		return LoginResult{}, ErrPendingApproval
	}

	token, err := crypto.GenerateToken(s.secret, u.ID, u.Role(), s.ttl)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		AccessToken: token,
		ExpiresIn:   int(s.ttl.Seconds()),
		User:        u,
		IsAdmin:     u.IsAdmin,
	}, nil
}
