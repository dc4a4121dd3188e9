package church

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateChurchRequest struct {
	Name         string   `json:"name"`
	RegionCode   string   `json:"region_code"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Pastor       string   `json:"pastor"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	ServiceTimes []string `json:"service_times"`
}

func (r CreateChurchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.RegionCode,
			validation.Required.Error("region_code is required"),
			validation.Length(2, 2).Error("region_code must be a two-letter country code"),
		),
		validation.Field(&r.City,
			validation.Required.Error("city is required"),
			validation.Length(1, 120),
		),
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Email, is.Email.Error("email must be a valid address")),
		validation.Field(&r.Website, is.URL.Error("website must be a valid URL")),
		validation.Field(&r.ServiceTimes,
			validation.Each(validation.Length(1, 100)),
		),
	)
}

// UpdateChurchRequest carries the full replacement state for a church.
type UpdateChurchRequest struct {
	CreateChurchRequest
}
