package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"caminodevida-backend/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateMessage(ctx context.Context, m *contact.Message) error {
	const query = `
		INSERT INTO contact_messages (id, name, email, country_code, subject, message, visitor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Email, m.CountryCode, m.Subject, m.Message, m.VisitorID,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListMessages(ctx context.Context, limit, offset int) ([]contact.Message, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	const query = `
		SELECT id, name, email, country_code, subject, message, visitor_id, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []contact.Message
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CountryCode, &m.Subject, &m.Message, &m.VisitorID, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

func (r *postgresRepository) CreateDecision(ctx context.Context, d *contact.Decision) error {
	const query = `
		INSERT INTO decisions (id, kind, name, email, country_code, locale, message, visitor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		d.ID, d.Kind, d.Name, d.Email, d.CountryCode, d.Locale, d.Message, d.VisitorID,
	).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListDecisions(ctx context.Context, kind string, limit, offset int) ([]contact.Decision, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM decisions WHERE ($1 = '' OR kind = $1)`, kind,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count decisions: %w", err)
	}

	const query = `
		SELECT id, kind, name, email, country_code, locale, message, visitor_id, created_at
		FROM decisions
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var decisions []contact.Decision
	for rows.Next() {
		var d contact.Decision
		if err := rows.Scan(&d.ID, &d.Kind, &d.Name, &d.Email, &d.CountryCode, &d.Locale, &d.Message, &d.VisitorID, &d.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan decision: %w", err)
		}
		decisions = append(decisions, d)
	}
	return decisions, total, rows.Err()
}
