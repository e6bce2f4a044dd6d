package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gamevault/internal/config"
	"gamevault/internal/db"
	"gamevault/internal/platform/logging"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage: migrate -command up|down|status|create [-name NAME] [-dir DIR]")

type options struct {
	command string
	name    string
	dir     string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.StringVar(&opts.command, "command", "up", "Migration command: up, down, status, create")
	fs.StringVar(&opts.name, "name", "", "Name for 'create' command")
	fs.StringVar(&opts.dir, "dir", "internal/db/migrations", "Target directory for 'create'")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.command {
	case "up", "down", "status":
	case "create":
		if opts.name == "" {
			return options{}, fmt.Errorf("name is required for 'create': %w", errUsage)
		}
	default:
		return options{}, fmt.Errorf("unknown command %q: %w", opts.command, errUsage)
	}
	return opts, nil
}

func main() {
	config.LoadEnvFiles()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("invalid arguments")
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(context.Background(), cfg, opts, log); err != nil {
		log.WithError(err).WithField("command", opts.command).Fatal("migration failed")
	}
}

func run(ctx context.Context, cfg config.Database, opts options, log logrus.FieldLogger) error {
	if opts.command == "create" {
		// New files go to disk, not the embedded FS.
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, opts.dir, opts.name, "sql"); err != nil {
			return err
		}
		log.WithField("name", opts.name).Info("migration created")
		return nil
	}

	pool, err := db.Open(ctx, cfg.DatabaseDSN, 2*time.Second)
	if err != nil {
		return err
	}
	defer pool.Close()
	sqlDB := db.SQLDB(pool)
	defer sqlDB.Close()

	switch opts.command {
	case "up":
		if err := db.MigrateUp(ctx, sqlDB); err != nil {
			return err
		}
		log.Info("migrations applied")
	case "down":
		if err := db.MigrateDown(ctx, sqlDB); err != nil {
			return err
		}
		log.Info("migration rolled back")
	case "status":
		return db.MigrationStatus(ctx, sqlDB)
	}
	return nil
}
