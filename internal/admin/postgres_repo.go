package admin

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE is_approved = false),
			(SELECT COUNT(*) FROM games),
			(SELECT COUNT(*) FROM licenses),
			(SELECT COUNT(*) FROM licenses WHERE is_active = true AND used_by IS NULL),
			(SELECT COUNT(*) FROM licenses WHERE used_by IS NOT NULL)`
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var st Stats
	err := r.db.QueryRow(timeoutCtx, query).Scan(
		&st.TotalUsers, &st.PendingUsers, &st.TotalGames,
		&st.TotalLicenses, &st.ActiveLicenses, &st.UsedLicenses,
	)
	return st, err
}
