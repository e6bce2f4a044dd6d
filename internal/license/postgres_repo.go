package license

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, key, is_active, used_by, created_at, used_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scan(row pgx.Row) (License, error) {
	var l License
	err := row.Scan(&l.ID, &l.Key, &l.IsActive, &l.UsedBy, &l.CreatedAt, &l.UsedAt)
	return l, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]License, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT `+columns+` FROM licenses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	licenses := []License{}
	for rows.Next() {
		l, err := scan(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}
	return licenses, rows.Err()
}

func (r *PostgresRepo) GetByKey(ctx context.Context, key string) (License, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	l, err := scan(r.db.QueryRow(timeoutCtx, `SELECT `+columns+` FROM licenses WHERE key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return License{}, ErrNotFound
		}
		return License{}, err
	}
	return l, nil
}

func (r *PostgresRepo) Create(ctx context.Context, l *License) error {
	const query = `
	INSERT INTO licenses (key, is_active)
	VALUES ($1, $2)
	RETURNING ` + columns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	created, err := scan(r.db.QueryRow(timeoutCtx, query, l.Key, l.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	*l = created
	return nil
}

func (r *PostgresRepo) SetActive(ctx context.Context, id string, active bool) (License, error) {
	if _, err := uuid.Parse(id); err != nil {
		return License{}, ErrNotFound
	}
	const query = `UPDATE licenses SET is_active = $2 WHERE id = $1 RETURNING ` + columns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	l, err := scan(r.db.QueryRow(timeoutCtx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return License{}, ErrNotFound
		}
		return License{}, err
	}
	return l, nil
}

// Redeem marks the license for key as used by userID inside tx. The row is
// locked so concurrent registrations cannot both redeem it.
func Redeem(ctx context.Context, tx pgx.Tx, key, userID string) error {
	l, err := scan(tx.QueryRow(ctx, `SELECT `+columns+` FROM licenses WHERE key = $1 FOR UPDATE`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidKey
		}
		return err
	}
	if err := l.Check(); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE licenses SET used_by = $2, used_at = now() WHERE id = $1`, l.ID, userID)
	return err
}
