package study

import "context"

type Service interface {
	RecordProgress(ctx context.Context, visitorID, studySlug string, req RecordProgressRequest) (*Progress, error)
	GetProgress(ctx context.Context, visitorID, studySlug string) (*StudyProgress, error)
}
