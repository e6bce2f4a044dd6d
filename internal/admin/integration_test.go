package admin_test

import (
	"context"
	"testing"
	"time"

	"gamevault/internal/admin"
	"gamevault/internal/game"
	"gamevault/internal/license"
	"gamevault/internal/platform/crypto"
	"gamevault/internal/testutil"
	"gamevault/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_RegistrationAndStats(t *testing.T) {
	pool := testutil.TestPool(t)
	ctx := context.Background()
	timeout := 3 * time.Second

	licenses := license.NewPostgresRepo(pool, timeout)
	users := user.NewPostgresRepo(pool, timeout)
	games := game.NewPostgresRepo(pool, timeout)
	stats := admin.NewPostgresRepo(pool, timeout)

	require.NoError(t, licenses.Create(ctx, &license.License{Key: "BETA-2024-ALPHA-001", IsActive: true}))
	require.NoError(t, licenses.Create(ctx, &license.License{Key: "BETA-2024-ALPHA-002", IsActive: true}))
	assert.ErrorIs(t, licenses.Create(ctx, &license.License{Key: "BETA-2024-ALPHA-001", IsActive: true}), license.ErrAlreadyExists)

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)

	t.Run("registration redeems license", func(t *testing.T) {
		u := &user.User{Username: "player1", PasswordHash: hash}
		require.NoError(t, users.CreateWithLicense(ctx, u, "BETA-2024-ALPHA-001"))
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.IsApproved)

		l, err := licenses.GetByKey(ctx, "BETA-2024-ALPHA-001")
		require.NoError(t, err)
		require.NotNil(t, l.UsedBy)
		assert.Equal(t, u.ID, *l.UsedBy)
	})

	t.Run("used license rolls back user", func(t *testing.T) {
		u := &user.User{Username: "player2", PasswordHash: hash}
		err := users.CreateWithLicense(ctx, u, "BETA-2024-ALPHA-001")
		assert.ErrorIs(t, err, license.ErrUsed)

		_, err = users.GetByUsername(ctx, "player2")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("steam app id is unique", func(t *testing.T) {
		appID := int64(620)
		g := &game.Game{Title: "Portal 2", Description: "d", ImageURL: "i", Category: "Action", Tags: []string{"Action"}, Screenshots: []string{}, IsActive: true, SteamAppID: &appID}
		require.NoError(t, games.Create(ctx, g))
		assert.Equal(t, []string{"Action"}, g.Tags)

		dup := &game.Game{Title: "Portal 2", Description: "d", ImageURL: "i", Category: "Action", Tags: []string{}, Screenshots: []string{}, SteamAppID: &appID}
		assert.ErrorIs(t, games.Create(ctx, dup), game.ErrAlreadyExists)
	})

	t.Run("stats", func(t *testing.T) {
		st, err := stats.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, admin.Stats{
			TotalUsers:     1,
			PendingUsers:   1,
			TotalGames:     1,
			TotalLicenses:  2,
			ActiveLicenses: 1,
			UsedLicenses:   1,
		}, st)
	})
}
