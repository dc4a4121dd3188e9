package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"caminodevida-backend/internal/domains/church"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) church.Repository {
	return &postgresRepository{pool: pool}
}

const churchColumns = `id, name, region_code, city, address, pastor, email, phone, website, service_times, created_at, updated_at`

func scanChurch(row pgx.Row, ch *church.Church) error {
	return row.Scan(
		&ch.ID, &ch.Name, &ch.RegionCode, &ch.City, &ch.Address,
		&ch.Pastor, &ch.Email, &ch.Phone, &ch.Website, &ch.ServiceTimes,
		&ch.CreatedAt, &ch.UpdatedAt,
	)
}

func (r *postgresRepository) List(ctx context.Context, filter church.Filter) ([]church.Church, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM churches
		WHERE ($1 = '' OR region_code = $1)
		  AND ($2 = '' OR LOWER(city) = LOWER($2))
		ORDER BY region_code, city, name
	`, churchColumns)

	rows, err := r.pool.Query(ctx, query, filter.RegionCode, filter.City)
	if err != nil {
		return nil, fmt.Errorf("query churches: %w", err)
	}
	defer rows.Close()

	var churches []church.Church
	for rows.Next() {
		var ch church.Church
		if err := scanChurch(rows, &ch); err != nil {
			return nil, fmt.Errorf("scan church: %w", err)
		}
		churches = append(churches, ch)
	}
	return churches, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*church.Church, error) {
	query := fmt.Sprintf(`SELECT %s FROM churches WHERE id = $1`, churchColumns)

	var ch church.Church
	if err := scanChurch(r.pool.QueryRow(ctx, query, id), &ch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, church.ErrChurchNotFound
		}
		return nil, fmt.Errorf("query church: %w", err)
	}
	return &ch, nil
}

func (r *postgresRepository) Create(ctx context.Context, ch *church.Church) error {
	const query = `
		INSERT INTO churches (id, name, region_code, city, address, pastor, email, phone, website, service_times)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		ch.ID, ch.Name, ch.RegionCode, ch.City, ch.Address,
		ch.Pastor, ch.Email, ch.Phone, ch.Website, ch.ServiceTimes,
	).Scan(&ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert church: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, ch *church.Church) error {
	const query = `
		UPDATE churches
		SET name = $2, region_code = $3, city = $4, address = $5,
		    pastor = $6, email = $7, phone = $8, website = $9,
		    service_times = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		ch.ID, ch.Name, ch.RegionCode, ch.City, ch.Address,
		ch.Pastor, ch.Email, ch.Phone, ch.Website, ch.ServiceTimes,
	).Scan(&ch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return church.ErrChurchNotFound
		}
		return fmt.Errorf("update church: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM churches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete church: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return church.ErrChurchNotFound
	}
	return nil
}
