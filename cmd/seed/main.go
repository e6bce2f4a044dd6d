package main

import (
	"context"
	"time"

	"gamevault/internal/config"
	"gamevault/internal/db"
	"gamevault/internal/game"
	"gamevault/internal/license"
	"gamevault/internal/platform/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var betaLicenseKeys = []string{
	"BETA-2024-ALPHA-001",
	"BETA-2024-ALPHA-002",
	"BETA-2024-ALPHA-003",
	"BETA-2024-GAMMA-004",
	"BETA-2024-DELTA-005",
}

var sampleGames = []game.Game{
	{
		Title:       "Cyber Legends",
		Description: "An epic cyberpunk adventure in a neon-lit metropolis. Battle through intense action sequences, make critical choices and uncover the truth behind a massive conspiracy.",
		ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/cyber-legends",
		Category:    "Action RPG",
		Tags:        []string{"Singleplayer", "Story Rich", "Cyberpunk", "Open World"},
		Featured:    true,
	},
	{
		Title:       "Fantasy Realms: Shadow Kingdom",
		Description: "Embark on a magical journey through mystical lands filled with danger and wonder. Command powerful spells, forge alliances and battle ancient evils.",
		ImageURL:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/fantasy-realms",
		Category:    "Fantasy RPG",
		Tags:        []string{"Multiplayer", "Magic", "Medieval", "Co-op"},
	},
	{
		Title:       "Velocity Racers",
		Description: "Experience the thrill of high-speed racing on futuristic tracks. Customize your hovercrafts and compete in global tournaments.",
		ImageURL:    "https://images.unsplash.com/photo-1511882150382-421056c89033?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/velocity-racers",
		Category:    "Racing",
		Tags:        []string{"Multiplayer", "Fast-Paced", "Competitive", "Customization"},
	},
	{
		Title:       "Survival Instinct",
		Description: "Fight to survive in a post-apocalyptic wasteland. Scavenge for resources, build shelters and defend against hostile threats.",
		ImageURL:    "https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/survival-instinct",
		Category:    "Survival",
		Tags:        []string{"Singleplayer", "Crafting", "Base Building", "Horror"},
	},
	{
		Title:       "Tactical Command",
		Description: "Lead your forces to victory in this deep strategy game. Plan your moves carefully and outsmart your opponents in tactical battles.",
		ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/tactical-command",
		Category:    "Strategy",
		Tags:        []string{"Turn-Based", "Strategy", "Tactical", "Singleplayer"},
	},
	{
		Title:       "Quantum Shift",
		Description: "Manipulate time and space in this mind-bending puzzle platformer. Navigate parallel dimensions and uncover the truth about reality itself.",
		ImageURL:    "https://images.unsplash.com/photo-1551103782-8ab07afd45c1?w=1920&h=1080&fit=crop",
		DownloadURL: "https://example.com/download/quantum-shift",
		Category:    "Puzzle Platformer",
		Tags:        []string{"Puzzle", "Platformer", "Sci-Fi", "Mind-Bending"},
	},
}

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadDatabase()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg.DatabaseDSN, 2*time.Second)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	defer pool.Close()

	if err := seed(ctx, pool, cfg.DBTimeout, log); err != nil {
		log.WithError(err).Fatal("seed failed")
	}
}

// seed fills the licenses and games tables when they are empty.
func seed(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, log logrus.FieldLogger) error {
	n, err := count(ctx, pool, "licenses")
	if err != nil {
		return err
	}
	if n == 0 {
		licenses := license.NewPostgresRepo(pool, timeout)
		for _, key := range betaLicenseKeys {
			if err := licenses.Create(ctx, &license.License{Key: key, IsActive: true}); err != nil {
				return err
			}
			log.WithField("key", key).Info("license seeded")
		}
	} else {
		log.WithField("count", n).Info("licenses already seeded")
	}

	n, err = count(ctx, pool, "games")
	if err != nil {
		return err
	}
	if n > 0 {
		log.WithField("count", n).Info("games already seeded")
		return nil
	}
	games := game.NewPostgresRepo(pool, timeout)
	for _, g := range sampleGames {
		g.IsActive = true
		g.Screenshots = []string{}
		if err := games.Create(ctx, &g); err != nil {
			return err
		}
	}
	log.WithField("count", len(sampleGames)).Info("games seeded")
	return nil
}

func count(ctx context.Context, pool *pgxpool.Pool, table string) (int, error) {
	var n int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}
