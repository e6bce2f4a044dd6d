package main

import (
	"gamevault/internal/bridge"
	"gamevault/internal/config"
	"gamevault/internal/enrich"
	"gamevault/internal/launch"
	"gamevault/internal/library"
	"gamevault/internal/platform/logging"
	"gamevault/internal/platform/steam"

	"github.com/sirupsen/logrus"
)

// app is everything a subcommand needs.
type app struct {
	cfg    config.Launcher
	log    logrus.FieldLogger
	bridge *bridge.Bridge
}

type appFactory func() (*app, error)

func defaultApp() (*app, error) {
	cfg, err := config.LoadLauncher()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	store := library.NewStore(cfg.LibraryPath, log)
	if err := store.Init(); err != nil {
		return nil, err
	}

	client := steam.NewClient(steam.Config{
		StoreURL:  cfg.Steam.StoreURL,
		APIURL:    cfg.Steam.APIURL,
		SearchURL: cfg.Steam.SearchURL,
		UserAgent: cfg.Steam.UserAgent,
		Timeout:   cfg.Steam.Timeout,
		RPS:       cfg.Steam.RPS,
	})
	cache := enrich.NewDirectoryCache(client.GetAppList, cfg.Steam.CacheTTL, nil)

	b := bridge.New(
		store,
		enrich.NewService(client, cache, log),
		launch.New(launch.SystemOpener(), log),
		bridge.DialogPicker{},
		log,
	)
	log.WithField("library", cfg.LibraryPath).Debug("launcher ready")
	return &app{cfg: cfg, log: log, bridge: b}, nil
}
