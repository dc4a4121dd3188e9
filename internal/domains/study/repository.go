package study

import "context"

type Repository interface {
	// Upsert records a completion. Re-completing a lesson refreshes its
	// completed_at rather than adding a second row.
	Upsert(ctx context.Context, p *Progress) error
	ListByVisitor(ctx context.Context, visitorID, studySlug string) ([]Progress, error)
}
