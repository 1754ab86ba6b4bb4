package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,is-user-role"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Email:    "patient@example.com",
		Password: "strong-password",
		Role:     "patient",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldMessages(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Email:    "not-an-email",
		Password: "short",
		Role:     "hacker",
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Имена полей берутся из JSON-тегов
	assert.Equal(t, "must be a valid email address", validationErr.Errors["email"])
	assert.Equal(t, "must be at least 8 characters long", validationErr.Errors["password"])
	assert.Equal(t, "is not a valid user role", validationErr.Errors["role"])
}

func TestValidate_RequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 3)
	assert.Equal(t, "is required", validationErr.Errors["email"])
}
