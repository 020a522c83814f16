package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registrationInput struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,len=10,number"`
	Password string `validate:"required,min=6"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(&registrationInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "0812345678",
		Password: "secret123",
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_CollectsAllFields(t *testing.T) {
	errs := ValidateStruct(&registrationInput{
		Name:     "A",
		Email:    "not-an-email",
		Phone:    "081234",
		Password: "123",
	})

	assert.Len(t, errs, 4)
	assert.Equal(t, "Minimum length is 2", errs["Name"])
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be exactly 10 characters", errs["Phone"])
	assert.Equal(t, "Minimum length is 6", errs["Password"])
}

func TestValidateStruct_NonNumericPhone(t *testing.T) {
	// signed and decimal strings are 10 characters long, so only the
	// digits-only rule can reject them
	for _, phone := range []string{"08123abcde", "-123456789", "+123456789", "1234.56789"} {
		errs := ValidateStruct(&registrationInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Phone:    phone,
			Password: "secret123",
		})
		assert.Equal(t, "Must contain digits only", errs["Phone"], "phone %q", phone)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", msg)
}
