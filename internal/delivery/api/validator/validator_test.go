package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&credentials{Email: "ada@example.com", Password: "x"}))

	err := v.Validate(&credentials{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, []string{"password"}, FailedFields(err))

	err = v.Validate(&credentials{})
	assert.ElementsMatch(t, []string{"email", "password"}, FailedFields(err))
}

func TestFailedFields_NonValidationError(t *testing.T) {
	assert.Nil(t, FailedFields(assert.AnError))
}
