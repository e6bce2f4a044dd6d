package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gamevault/internal/admin"
	"gamevault/internal/auth"
	"gamevault/internal/config"
	"gamevault/internal/db"
	"gamevault/internal/game"
	"gamevault/internal/httpx"
	"gamevault/internal/license"
	"gamevault/internal/platform/crypto"
	"gamevault/internal/platform/logging"
	"gamevault/internal/platform/metrics"
	"gamevault/internal/platform/steam"
	"gamevault/internal/user"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadAPI()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg config.API, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.DatabaseDSN, 2*time.Second)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.WithField("dsn", redactDSN(cfg.DatabaseDSN)).Info("database connection OK")

	steamClient := steam.NewClient(steam.Config{
		StoreURL:  cfg.Steam.StoreURL,
		APIURL:    cfg.Steam.APIURL,
		SearchURL: cfg.Steam.SearchURL,
		UserAgent: cfg.Steam.UserAgent,
		Timeout:   cfg.Steam.Timeout,
		RPS:       cfg.Steam.RPS,
	})

	licenseService := license.NewService(license.NewPostgresRepo(pool, cfg.DBTimeout), log)
	userService := user.NewService(user.NewPostgresRepo(pool, cfg.DBTimeout), log)
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService, licenseService, log)
	gameService := game.NewService(game.NewPostgresRepo(pool, cfg.DBTimeout), steamClient, log)
	adminService := admin.NewService(admin.NewPostgresRepo(pool, cfg.DBTimeout), log)

	if cfg.AdminPassword != "" {
		if err := ensureAdmin(ctx, userService, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	}

	router := newRouter(handlers{
		auth:    auth.NewHTTPHandler(authService),
		users:   user.NewHTTPHandler(userService),
		games:   game.NewHTTPHandler(gameService),
		license: license.NewHTTPHandler(licenseService),
		admin:   admin.NewHTTPHandler(adminService),
	}, cfg.JWTSecret, pool)

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.RunCleanup(ctx)

	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		metrics.InstrumentHandler,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func ensureAdmin(ctx context.Context, users *user.Service, username, password string) error {
	if err := crypto.ValidatePasswordStrength(password); err != nil {
		return err
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = users.EnsureAdmin(ctx, username, hash)
	return err
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
