package repository

import (
	"context"
	"fmt"

	"caminodevida-backend/internal/domains/flags"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) flags.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FetchFlags(ctx context.Context, countryCode string) ([]flags.FeatureFlag, error) {
	// Global rows always apply; country rows only for the requested
	// country. An empty country narrows to global rows only.
	const query = `
		SELECT id, key, country_code, enabled, COALESCE(notes, ''), updated_at
		FROM feature_flags
		WHERE country_code IS NULL OR ($1 <> '' AND country_code = $1)
		ORDER BY key
	`

	rows, err := r.pool.Query(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("query feature flags: %w", err)
	}
	defer rows.Close()

	var result []flags.FeatureFlag
	for rows.Next() {
		var f flags.FeatureFlag
		if err := rows.Scan(&f.ID, &f.Key, &f.CountryCode, &f.Enabled, &f.Notes, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feature flag: %w", err)
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]flags.FeatureFlag, error) {
	const query = `
		SELECT id, key, country_code, enabled, COALESCE(notes, ''), updated_at
		FROM feature_flags
		ORDER BY key, country_code NULLS FIRST
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list feature flags: %w", err)
	}
	defer rows.Close()

	var result []flags.FeatureFlag
	for rows.Next() {
		var f flags.FeatureFlag
		if err := rows.Scan(&f.ID, &f.Key, &f.CountryCode, &f.Enabled, &f.Notes, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan feature flag: %w", err)
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *postgresRepository) Upsert(ctx context.Context, flag *flags.FeatureFlag) error {
	// A partial unique index on (key) WHERE country_code IS NULL plus a
	// unique (key, country_code) pair keep one row per scope.
	const query = `
		INSERT INTO feature_flags (id, key, country_code, enabled, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key, country_code) DO UPDATE
		SET enabled = EXCLUDED.enabled, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		flag.ID, flag.Key, flag.CountryCode, flag.Enabled, flag.Notes, flag.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert feature flag: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, key string, countryCode string) error {
	const query = `
		DELETE FROM feature_flags
		WHERE key = $1
		  AND (($2 = '' AND country_code IS NULL) OR country_code = $2)
	`

	tag, err := r.pool.Exec(ctx, query, key, countryCode)
	if err != nil {
		return fmt.Errorf("delete feature flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return flags.ErrFlagNotFound
	}
	return nil
}
