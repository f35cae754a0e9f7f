package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Contact  *contact `json:"contact" validate:"required"`
}

type contact struct {
	Phone string `json:"phone" validate:"required"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{Email: "not-an-email", Password: "123", Contact: &contact{}})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"email":         "email",
		"password":      "min=6",
		"contact.phone": "required",
	}, FieldErrors(err))
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signUp{Email: "a@b.co", Password: "123456", Contact: &contact{Phone: "0912"}}))
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
