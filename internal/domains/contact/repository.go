package contact

import "context"

type Repository interface {
	CreateMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, limit, offset int) ([]Message, int64, error)

	CreateDecision(ctx context.Context, d *Decision) error
	ListDecisions(ctx context.Context, kind string, limit, offset int) ([]Decision, int64, error)
}
