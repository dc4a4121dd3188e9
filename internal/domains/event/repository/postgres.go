package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"caminodevida-backend/internal/domains/event"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) event.Repository {
	return &postgresRepository{pool: pool}
}

const eventColumns = `id, title, slug, description, starts_at, ends_at, region_code, city, venue, cover_url, fee, currency, published, created_at, updated_at`

func scanEvent(row pgx.Row, ev *event.Event) error {
	return row.Scan(
		&ev.ID, &ev.Title, &ev.Slug, &ev.Description, &ev.StartsAt, &ev.EndsAt,
		&ev.RegionCode, &ev.City, &ev.Venue, &ev.CoverURL, &ev.Fee, &ev.Currency,
		&ev.Published, &ev.CreatedAt, &ev.UpdatedAt,
	)
}

func (r *postgresRepository) List(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE ($1 = '' OR region_code = $1)
		  AND (NOT $2 OR starts_at >= NOW())
		  AND (NOT $3 OR published)
		ORDER BY starts_at
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, filter.RegionCode, filter.UpcomingOnly, filter.PublishedOnly)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var ev event.Event
		if err := scanEvent(rows, &ev); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	var ev event.Event
	if err := scanEvent(r.pool.QueryRow(ctx, query, id), &ev); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("query event: %w", err)
	}
	return &ev, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE slug = $1`, eventColumns)

	var ev event.Event
	if err := scanEvent(r.pool.QueryRow(ctx, query, slug), &ev); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("query event by slug: %w", err)
	}
	return &ev, nil
}

func (r *postgresRepository) Create(ctx context.Context, ev *event.Event) error {
	const query = `
		INSERT INTO events (id, title, slug, description, starts_at, ends_at, region_code, city, venue, cover_url, fee, currency, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		ev.ID, ev.Title, ev.Slug, ev.Description, ev.StartsAt, ev.EndsAt,
		ev.RegionCode, ev.City, ev.Venue, ev.CoverURL, ev.Fee, ev.Currency, ev.Published,
	).Scan(&ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return event.ErrDuplicateSlug
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, ev *event.Event) error {
	const query = `
		UPDATE events
		SET title = $2, slug = $3, description = $4, starts_at = $5, ends_at = $6,
		    region_code = $7, city = $8, venue = $9, cover_url = $10,
		    fee = $11, currency = $12, published = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		ev.ID, ev.Title, ev.Slug, ev.Description, ev.StartsAt, ev.EndsAt,
		ev.RegionCode, ev.City, ev.Venue, ev.CoverURL, ev.Fee, ev.Currency, ev.Published,
	).Scan(&ev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.ErrEventNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return event.ErrDuplicateSlug
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
