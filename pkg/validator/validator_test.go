package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replacePayload struct {
	Products []productPayload `validate:"required,min=1,dive"`
}

type productPayload struct {
	ID   string `validate:"required"`
	Name string `validate:"required,min=1"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(replacePayload{
		Products: []productPayload{{ID: "p1", Name: "Phone"}},
	})
	assert.NoError(t, err)
}

func TestValidate_RequiredField(t *testing.T) {
	err := Validate(replacePayload{
		Products: []productPayload{{ID: "p1"}},
	})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Contains(t, fields, "Name")
	assert.Equal(t, "is required", fields["Name"])
}

func TestValidate_EmptySlice(t *testing.T) {
	err := Validate(replacePayload{Products: []productPayload{}})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields(), "Products")
}

func TestValidationError_ErrorMessage(t *testing.T) {
	err := Validate(replacePayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Products")
	assert.Contains(t, err.Error(), "is required")
}
