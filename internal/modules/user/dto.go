package user

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	errSetupDone        = errors.New("setup already completed")
	errEmailTaken       = errors.New("email already registered")
	errBadCredentials   = errors.New("invalid email or password")
	errBadResetToken    = errors.New("reset token invalid or expired")
	errWrongPassword    = errors.New("current password is incorrect")
	errUserNotFound     = errors.New("user not found")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
)

const minPasswordLen = 6

// CreateAccountDTO serves both the first-run setup and the signup endpoint.
type CreateAccountDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto CreateAccountDTO) Validate() error {
	return validation.ValidateStruct(&dto,
		validation.Field(&dto.Name, validation.Required.Error("Name is required")),
		validation.Field(&dto.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email"),
		),
		validation.Field(&dto.Password,
			validation.Required.Error("Password is required"),
			validation.Length(minPasswordLen, 0).Error("Password must be at least 6 characters"),
		),
	)
}

type SignInDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordDTO struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
