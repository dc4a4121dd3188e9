package contact

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// Submission context resolved from the request by the region middleware.
type SubmissionContext struct {
	CountryCode string
	Locale      string
	VisitorID   string
}

type Service interface {
	SubmitMessage(ctx context.Context, req CreateMessageRequest, sub SubmissionContext) (*Message, error)
	SubmitDecision(ctx context.Context, req CreateDecisionRequest, sub SubmissionContext) (*Decision, error)

	ListMessages(ctx context.Context, limit, offset int) ([]Message, int64, error)
	ListDecisions(ctx context.Context, kind string, limit, offset int) ([]Decision, int64, error)
	ExportDecisionsToExcel(ctx context.Context, kind string) (*excelize.File, error)
}
