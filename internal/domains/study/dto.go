package study

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type RecordProgressRequest struct {
	LessonSlug string `json:"lesson_slug"`
}

func (r RecordProgressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LessonSlug,
			validation.Required.Error("lesson_slug is required"),
			validation.Length(1, 200),
		),
	)
}
