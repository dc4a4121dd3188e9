package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"caminodevida-backend/internal/domains/study"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) study.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Upsert(ctx context.Context, p *study.Progress) error {
	const query = `
		INSERT INTO study_progress (id, visitor_id, study_slug, lesson_slug, completed_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (visitor_id, study_slug, lesson_slug)
		DO UPDATE SET completed_at = NOW()
		RETURNING id, completed_at
	`

	err := r.pool.QueryRow(ctx, query, p.ID, p.VisitorID, p.StudySlug, p.LessonSlug).
		Scan(&p.ID, &p.CompletedAt)
	if err != nil {
		return fmt.Errorf("upsert study progress: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByVisitor(ctx context.Context, visitorID, studySlug string) ([]study.Progress, error) {
	const query = `
		SELECT id, visitor_id, study_slug, lesson_slug, completed_at
		FROM study_progress
		WHERE visitor_id = $1 AND ($2 = '' OR study_slug = $2)
		ORDER BY completed_at
	`

	rows, err := r.pool.Query(ctx, query, visitorID, studySlug)
	if err != nil {
		return nil, fmt.Errorf("query study progress: %w", err)
	}
	defer rows.Close()

	var progress []study.Progress
	for rows.Next() {
		var p study.Progress
		if err := rows.Scan(&p.ID, &p.VisitorID, &p.StudySlug, &p.LessonSlug, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan study progress: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
