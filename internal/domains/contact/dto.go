package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 120),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid address"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(2, 5000),
		),
	)
}

type CreateDecisionRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r CreateDecisionRequest) Validate() error {
	kinds := make([]interface{}, len(DecisionKinds))
	for i, k := range DecisionKinds {
		kinds[i] = k
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required.Error("kind is required"),
			validation.In(kinds...).Error("kind must be one of first_time, recommitment, prayer, other"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 120),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid address"),
		),
		validation.Field(&r.Message, validation.Length(0, 5000)),
	)
}
