package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"caminodevida-backend/internal/domains/study"
)

type studyService struct {
	repo study.Repository
}

func NewStudyService(repo study.Repository) study.Service {
	return &studyService{repo: repo}
}

func (s *studyService) RecordProgress(ctx context.Context, visitorID, studySlug string, req study.RecordProgressRequest) (*study.Progress, error) {
	if visitorID == "" {
		return nil, study.ErrNoVisitor
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", study.ErrValidation, err)
	}

	p := &study.Progress{
		ID:         uuid.New(),
		VisitorID:  visitorID,
		StudySlug:  studySlug,
		LessonSlug: req.LessonSlug,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *studyService) GetProgress(ctx context.Context, visitorID, studySlug string) (*study.StudyProgress, error) {
	if visitorID == "" {
		return nil, study.ErrNoVisitor
	}

	lessons, err := s.repo.ListByVisitor(ctx, visitorID, studySlug)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []study.Progress{}
	}

	return &study.StudyProgress{
		StudySlug:        studySlug,
		CompletedLessons: lessons,
	}, nil
}
