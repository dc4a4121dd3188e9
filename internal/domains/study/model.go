package study

import (
	"time"

	"github.com/google/uuid"
)

// Progress records that a visitor completed a study lesson. Visitors
// are identified by the visitor_id cookie, not by an account.
type Progress struct {
	ID          uuid.UUID `json:"id"`
	VisitorID   string    `json:"visitor_id"`
	StudySlug   string    `json:"study_slug"`
	LessonSlug  string    `json:"lesson_slug"`
	CompletedAt time.Time `json:"completed_at"`
}

// StudyProgress summarizes one visitor's position in a study.
type StudyProgress struct {
	StudySlug        string     `json:"study_slug"`
	CompletedLessons []Progress `json:"completed_lessons"`
}
