// Package forms validates user input before any network call. A validation
// failure blocks submission entirely; the messages are shown inline.
package forms

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

type ResetPasswordForm struct {
	Email           string `validate:"required,email"`
	OTPCode         string `validate:"required"`
	NewPassword     string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

func ValidateLogin(f LoginForm) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("enter a valid email and password")
	}
	return nil
}

func ValidateRegister(f RegisterForm) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := validate.Var(f.Email, "required,email"); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	if len(f.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

func ValidateForgotPassword(f ForgotPasswordForm) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// ValidateResetPassword enforces the reset contract: a 6-digit numeric OTP,
// a new password of at least 8 characters, and a matching confirmation.
// Checks run in that order and the first failure is returned.
func ValidateResetPassword(f ResetPasswordForm) error {
	if f.Email == "" || f.OTPCode == "" || f.NewPassword == "" || f.ConfirmPassword == "" {
		return fmt.Errorf("all fields are required")
	}
	if err := validate.Var(f.Email, "email"); err != nil {
		return fmt.Errorf("enter a valid email address")
	}
	if !isSixDigits(f.OTPCode) {
		return fmt.Errorf("OTP must be 6 digits")
	}
	if len(f.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if f.NewPassword != f.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
