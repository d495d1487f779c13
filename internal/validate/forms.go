package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// SignupForm carries the fields collected at registration.
type SignupForm struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,e164|numeric,min=10,max=15"`
	Password string `validate:"required"`
	Address  string `validate:"required,min=5"`
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	Name    string `validate:"omitempty,min=2,max=100"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"omitempty,min=10,max=15"`
	Address string `validate:"omitempty,min=5"`
}

// AadharForm carries the KYC verification input.
type AadharForm struct {
	AadharNumber string `validate:"required,len=12,numeric"`
}

// Signup validates a signup form, including password strength.
func Signup(form SignupForm) error {
	if err := formValidator.Struct(form); err != nil {
		return err
	}
	if pw := CheckPassword(form.Password); !pw.IsValid {
		return fmt.Errorf("weak password: %s", pw.Errors[0])
	}
	return nil
}

// Profile validates a profile update form.
func Profile(form ProfileForm) error {
	return formValidator.Struct(form)
}

// Aadhar validates the KYC input before it is sent to the backend.
func Aadhar(form AadharForm) error {
	return formValidator.Struct(form)
}
