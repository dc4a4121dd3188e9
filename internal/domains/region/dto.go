package region

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertRegionRequest creates or updates a reference region row.
type UpsertRegionRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

func (r UpsertRegionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.Length(2, 2).Error("code must be a two-letter country code"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Locale,
			validation.Required.Error("locale is required"),
			validation.In("es", "pt").Error("locale must be es or pt"),
		),
	)
}

// CreateCityRequest adds a city to a region.
type CreateCityRequest struct {
	RegionCode string `json:"region_code"`
	Name       string `json:"name"`
}

func (r CreateCityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RegionCode,
			validation.Required.Error("region_code is required"),
			validation.Length(2, 2),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 120),
		),
	)
}
