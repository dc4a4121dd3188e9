package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required.Error("refresh_token is required")),
	)
}

// CreateUserRequest provisions a new admin console account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72).Error("password must be 8-72 characters"),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("full_name is required"),
			validation.Length(2, 120),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(RoleAdmin, RoleEditor).Error("role must be admin or editor"),
		),
	)
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
