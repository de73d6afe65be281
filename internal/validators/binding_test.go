package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	Type  string `json:"type" validate:"required,consultation_type"`
	Date  string `json:"date" validate:"required,iso_date"`
	Time  string `json:"time" validate:"required,iso_slot"`
	Notes string `json:"notes" validate:"max=10"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRegister_AcceptsWellFormedBooking(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(bookingRequest{Type: "package", Date: "2024-01-16", Time: "2024-01-16T14:30"})

	assert.NoError(t, err)
}

func TestRegister_RejectsMalformedFields(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(bookingRequest{Type: "phone", Date: "16/01/2024", Time: "2:30 PM", Notes: "far too long for this"})
	require.Error(t, err)

	got := Describe(err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "Type", Message: "must be one of video, chat, package"},
		{Field: "Date", Message: "must be a date formatted yyyy-MM-dd"},
		{Field: "Time", Message: "must be a time formatted yyyy-MM-ddTHH:mm"},
		{Field: "Notes", Message: "must be at most 10 characters"},
	}, got)
}

func TestDescribe_NonValidationError(t *testing.T) {
	got := Describe(errors.New("unexpected EOF"))

	assert.Equal(t, []FieldError{{Field: "body", Message: "unexpected EOF"}}, got)
}

func TestRegisterGin(t *testing.T) {
	assert.NoError(t, RegisterGin())
}
