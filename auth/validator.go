package auth

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "elective-hub/errors"
)

var validate = validator.New()

// Account is the shape accepted by the roster seed tool when creating
// login credentials.
type Account struct {
	UserID   string `validate:"required"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=12,max=72"`
}

func ValidateAccount(acc Account) error {
	if err := validate.Struct(acc); err != nil {
		return err
	}
	if !isPasswordComplex(acc.Password) {
		return apperrors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
