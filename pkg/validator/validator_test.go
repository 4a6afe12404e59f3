package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	BirthDate string `json:"birth_date" validate:"omitempty,date"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Password: "short", BirthDate: "31/12/2000"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "password must be at least 8 characters", errs["password"])
	assert.Equal(t, "birth_date must be a date in YYYY-MM-DD format", errs["birth_date"])
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Name: "Dr. Who", Email: "who@example.com", Password: "longenough", BirthDate: "1980-02-29"})
	assert.NoError(t, err)
}
