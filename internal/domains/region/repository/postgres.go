package repository

import (
	"context"
	"errors"
	"fmt"

	"caminodevida-backend/internal/domains/region"
	"caminodevida-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) region.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListCodes(ctx context.Context) ([]string, error) {
	const query = `SELECT code FROM regions ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query region codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan region code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *postgresRepository) ListRegions(ctx context.Context) ([]region.Region, error) {
	const query = `
		SELECT code, name, locale, created_at, updated_at
		FROM regions
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()

	var regions []region.Region
	for rows.Next() {
		var reg region.Region
		if err := rows.Scan(&reg.Code, &reg.Name, &reg.Locale, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, reg)
	}
	return regions, rows.Err()
}

func (r *postgresRepository) GetRegion(ctx context.Context, code string) (*region.Region, error) {
	const query = `
		SELECT code, name, locale, created_at, updated_at
		FROM regions
		WHERE code = $1
	`

	var reg region.Region
	err := r.pool.QueryRow(ctx, query, code).
		Scan(&reg.Code, &reg.Name, &reg.Locale, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, region.ErrRegionNotFound
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &reg, nil
}

func (r *postgresRepository) UpsertRegion(ctx context.Context, reg *region.Region) error {
	const query = `
		INSERT INTO regions (code, name, locale, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, locale = EXCLUDED.locale, updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, reg.Code, reg.Name, reg.Locale, reg.UpdatedAt).
		Scan(&reg.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert region: %w", err)
	}
	return nil
}

// DeleteRegion removes a region and its cities in one transaction.
func (r *postgresRepository) DeleteRegion(ctx context.Context, code string) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cities WHERE region_code = $1`, code); err != nil {
			return fmt.Errorf("delete region cities: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM regions WHERE code = $1`, code)
		if err != nil {
			return fmt.Errorf("delete region: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return region.ErrRegionNotFound
		}
		return nil
	})
}

func (r *postgresRepository) ListCities(ctx context.Context, regionCode string) ([]region.City, error) {
	const query = `
		SELECT id, region_code, name, created_at
		FROM cities
		WHERE ($1 = '' OR region_code = $1)
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, regionCode)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	var cities []region.City
	for rows.Next() {
		var city region.City
		if err := rows.Scan(&city.ID, &city.RegionCode, &city.Name, &city.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r *postgresRepository) CreateCity(ctx context.Context, city *region.City) (*region.City, error) {
	const query = `
		INSERT INTO cities (region_code, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, city.RegionCode, city.Name, city.CreatedAt).
		Scan(&city.ID)
	if err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	return city, nil
}

func (r *postgresRepository) DeleteCity(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return region.ErrCityNotFound
	}
	return nil
}
