package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMessageDTO is the public contact-form payload.
type CreateMessageDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (dto CreateMessageDTO) Validate() error {
	return validation.ValidateStruct(&dto,
		validation.Field(&dto.Name, validation.Required.Error("Name is required")),
		validation.Field(&dto.Email,
			// A missing email reports the same entry as a malformed one.
			validation.Required.Error("Invalid email"),
			is.Email.Error("Invalid email"),
		),
		validation.Field(&dto.Message, validation.Required.Error("Message is required")),
	)
}

// ErrorList flattens a validation error into presentable messages.
func ErrorList(err error) []string {
	errs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, field := range []string{"name", "email", "message"} {
		if fieldErr, present := errs[field]; present {
			out = append(out, fieldErr.Error())
		}
	}
	return out
}
