package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
)

func TestValidateRegistration(t *testing.T) {
	valid := &models.RegisterRequestBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123",
	}
	assert.Empty(t, ValidateRegistration(valid))

	errors := ValidateRegistration(&models.RegisterRequestBody{
		Username: "al",
		Email:    "not-an-email",
		Password: "short",
	})
	assert.Contains(t, errors, error(errs.ErrInvalidUsername))
	assert.Contains(t, errors, error(errs.ErrInvalidEmail))
	assert.Contains(t, errors, error(errs.ErrWeakPassword))

	assert.Equal(t, []error{errs.ErrInvalidRequestBody}, ValidateRegistration(nil))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.io"))
	assert.False(t, ValidateEmail("alice@"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("alice example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Secret123"))
	assert.False(t, ValidatePassword("Sh0rt"))
	assert.False(t, ValidatePassword("alllowercase1"))
	assert.False(t, ValidatePassword("ALLUPPERCASE1"))
	assert.False(t, ValidatePassword("NoDigitsHere"))
}
