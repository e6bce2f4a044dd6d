package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamevault/internal/license"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, username, password, is_admin, is_approved, license_key, avatar_url, bio, location, created_at`

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

func scan(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.IsApproved,
		&u.LicenseKey, &u.AvatarURL, &u.Bio, &u.Location, &u.CreatedAt)
	return u, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const insertQuery = `
	INSERT INTO users (username, password, is_admin, is_approved, license_key)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + columns

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	created, err := scan(r.db.QueryRow(timeoutCtx, insertQuery, u.Username, u.PasswordHash, u.IsAdmin, u.IsApproved, u.LicenseKey))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	*u = created
	return nil
}

func (r *PostgresRepo) CreateWithLicense(ctx context.Context, u *User, licenseKey string) (err error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(timeoutCtx)
		}
	}()

	created, err := scan(tx.QueryRow(timeoutCtx, insertQuery, u.Username, u.PasswordHash, false, false, licenseKey))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if err = license.Redeem(timeoutCtx, tx, licenseKey, created.ID); err != nil {
		return err
	}
	if err = tx.Commit(timeoutCtx); err != nil {
		return err
	}
	*u = created
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrNotFound
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scan(r.db.QueryRow(timeoutCtx, `SELECT `+columns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scan(r.db.QueryRow(timeoutCtx, `SELECT `+columns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT `+columns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, id string, patch Patch) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrNotFound
	}

	fields := []string{}
	args := []any{}
	argn := 1
	set := func(column string, value any) {
		fields = append(fields, fmt.Sprintf("%s = $%d", column, argn))
		args = append(args, value)
		argn++
	}
	if patch.IsApproved != nil {
		set("is_approved", *patch.IsApproved)
	}
	if patch.IsAdmin != nil {
		set("is_admin", *patch.IsAdmin)
	}
	if patch.Bio != nil {
		set("bio", *patch.Bio)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.AvatarURL != nil {
		set("avatar_url", *patch.AvatarURL)
	}
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s", strings.Join(fields, ", "), argn, columns)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scan(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) SetPassword(ctx context.Context, id, passwordHash string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `UPDATE users SET password = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
