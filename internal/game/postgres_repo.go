package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id, title, description, image_url, download_url, category, tags, featured,
	is_active, steam_app_id, screenshots, average_rating, total_ratings, created_at`

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

func scan(row pgx.Row) (Game, error) {
	var g Game
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.DownloadURL, &g.Category,
		&g.Tags, &g.Featured, &g.IsActive, &g.SteamAppID, &g.Screenshots,
		&g.AverageRating, &g.TotalRatings, &g.CreatedAt)
	return g, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Game, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if !q.IncludeInactive {
		clauses = append(clauses, "is_active = true")
	}
	if q.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", argn))
		args = append(args, q.Category)
		argn++
	}
	if q.Featured != nil {
		clauses = append(clauses, fmt.Sprintf("featured = $%d", argn))
		args = append(args, *q.Featured)
		argn++
	}
	if q.Q != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR $%d ILIKE ANY(tags))", argn, argn, argn+1))
		args = append(args, "%"+q.Q+"%", q.Q)
		argn += 2
	}
	where := "WHERE " + strings.Join(clauses, " AND ")

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM games "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`SELECT %s FROM games %s ORDER BY featured DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		columns, where, argn, argn+1)
	rows, err := r.db.Query(timeoutCtx, dataSQL, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		g, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		games = append(games, g)
	}
	return games, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Game{}, ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+columns+` FROM games WHERE id = $1`, id)
}

func (r *PostgresRepo) GetBySteamAppID(ctx context.Context, appID int64) (Game, error) {
	return r.getOne(ctx, `SELECT `+columns+` FROM games WHERE steam_app_id = $1`, appID)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (Game, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, err := scan(r.db.QueryRow(timeoutCtx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, err
	}
	return g, nil
}

func (r *PostgresRepo) Create(ctx context.Context, g *Game) error {
	const query = `
		INSERT INTO games (title, description, image_url, download_url, category, tags,
		                   featured, is_active, steam_app_id, screenshots)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + columns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	created, err := scan(r.db.QueryRow(timeoutCtx, query, g.Title, g.Description, g.ImageURL, g.DownloadURL,
		g.Category, g.Tags, g.Featured, g.IsActive, g.SteamAppID, g.Screenshots))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	*g = created
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, patch Patch) (Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Game{}, ErrNotFound
	}

	fields := []string{}
	args := []any{}
	argn := 1
	set := func(column string, value any) {
		fields = append(fields, fmt.Sprintf("%s = $%d", column, argn))
		args = append(args, value)
		argn++
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		set("image_url", *patch.ImageURL)
	}
	if patch.DownloadURL != nil {
		set("download_url", *patch.DownloadURL)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Tags != nil {
		set("tags", *patch.Tags)
	}
	if patch.Featured != nil {
		set("featured", *patch.Featured)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}
	if patch.Screenshots != nil {
		set("screenshots", *patch.Screenshots)
	}
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE games SET %s WHERE id = $%d RETURNING %s", strings.Join(fields, ", "), argn, columns)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	g, err := scan(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, err
	}
	return g, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
