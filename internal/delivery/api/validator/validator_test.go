package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signUpBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty" validate:"max=8"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signUpBody{Email: "a@example.com", Password: "pw"}))

	err := v.Validate(&signUpBody{Email: "not-an-email", Name: "much too long"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "password is required")
	assert.Contains(t, err.Error(), "name must be at most 8 characters")
}
