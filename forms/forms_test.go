package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validReset() ResetPasswordForm {
	return ResetPasswordForm{
		Email:           "user@example.com",
		OTPCode:         "123456",
		NewPassword:     "NewPassword1",
		ConfirmPassword: "NewPassword1",
	}
}

func TestValidateResetPassword(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ResetPasswordForm)
		message string
	}{
		{"valid form passes", func(f *ResetPasswordForm) {}, ""},
		{"five digit otp", func(f *ResetPasswordForm) { f.OTPCode = "12345" }, "OTP must be 6 digits"},
		{"seven digit otp", func(f *ResetPasswordForm) { f.OTPCode = "1234567" }, "OTP must be 6 digits"},
		{"alphanumeric otp", func(f *ResetPasswordForm) { f.OTPCode = "12a456" }, "OTP must be 6 digits"},
		{"short password", func(f *ResetPasswordForm) {
			f.NewPassword = "Short1!"
			f.ConfirmPassword = "Short1!"
		}, "password must be at least 8 characters"},
		{"mismatched confirmation", func(f *ResetPasswordForm) { f.ConfirmPassword = "Different1" }, "passwords do not match"},
		{"missing otp", func(f *ResetPasswordForm) { f.OTPCode = "" }, "all fields are required"},
		{"bad email", func(f *ResetPasswordForm) { f.Email = "not-an-email" }, "enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			form := validReset()
			tt.mutate(&form)

			err := ValidateResetPassword(form)
			if tt.message == "" {
				req.NoError(err)
				return
			}
			req.Error(err)
			req.Equal(tt.message, err.Error())
		})
	}
}

func TestValidateRegister(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateRegister(RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "LongEnough1"}))
	req.Error(ValidateRegister(RegisterForm{Name: "", Email: "ana@example.com", Password: "LongEnough1"}))
	req.Error(ValidateRegister(RegisterForm{Name: "Ana", Email: "nope", Password: "LongEnough1"}))
	req.Error(ValidateRegister(RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "short"}))
}

func TestValidateLogin(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateLogin(LoginForm{Email: "a@b.co", Password: "x"}))
	req.Error(ValidateLogin(LoginForm{Email: "a@b.co", Password: ""}))
	req.Error(ValidateLogin(LoginForm{Email: "broken", Password: "x"}))
}
