package event

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	RegionCode  string     `json:"region_code"`
	City        string     `json:"city"`
	Venue       string     `json:"venue"`
	// Fee is a decimal string, e.g. "25.00". Empty means free.
	Fee       string `json:"fee"`
	Currency  string `json:"currency"`
	Published bool   `json:"published"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.StartsAt, validation.Required.Error("starts_at is required")),
		validation.Field(&r.RegionCode,
			validation.Required.Error("region_code is required"),
			validation.Length(2, 2).Error("region_code must be a two-letter country code"),
		),
		validation.Field(&r.City, validation.Required.Error("city is required")),
		validation.Field(&r.Venue, validation.Length(0, 200)),
		validation.Field(&r.Currency,
			validation.When(r.Fee != "", validation.Required.Error("currency is required when fee is set")),
			validation.Length(3, 3).Error("currency must be a three-letter code"),
		),
	)
}

// UpdateEventRequest carries the full replacement state for an event.
type UpdateEventRequest struct {
	CreateEventRequest
}
