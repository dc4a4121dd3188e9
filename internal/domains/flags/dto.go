package flags

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertFlagRequest creates or updates a flag row. An empty country code
// targets the global row.
type UpsertFlagRequest struct {
	Key         string `json:"key"`
	CountryCode string `json:"country_code"`
	Enabled     bool   `json:"enabled"`
	Notes       string `json:"notes"`
}

func (r UpsertFlagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.CountryCode,
			validation.When(r.CountryCode != "",
				validation.Length(2, 2).Error("country_code must be a two-letter code"),
			),
		),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}
