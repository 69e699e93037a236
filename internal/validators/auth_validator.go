package validators

import (
	"regexp"
	"unicode"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateRegistration(body *models.RegisterRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if body.Username == "" || len(body.Username) < 3 {
		errors = append(errors, errs.ErrInvalidUsername)
	}

	if body.Email == "" || !ValidateEmail(body.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if !ValidatePassword(body.Password) {
		errors = append(errors, errs.ErrWeakPassword)
	}

	return errors
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword requires at least six characters with an upper-case
// letter, a lower-case letter and a digit.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
