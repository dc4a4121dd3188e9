package chat

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SendMessageRequest struct {
	Message string `json:"message"`
}

func (r SendMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 4000).Error("message must be 1-4000 characters"),
		),
	)
}
