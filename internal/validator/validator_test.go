package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ndevrinc/outdoor-quiz/internal/errors"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

func TestValidateEmailGate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(models.EmailGateData{
		Email:   "ops@summitgear.com",
		Website: "summitgear.com",
	})
	assert.NoError(t, err)
}

func TestValidateEmailGate_MissingFields(t *testing.T) {
	v := New()
	err := v.Validate(models.EmailGateData{})
	require.Error(t, err)

	var ve apperrors.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := ve.Fields()
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "Website URL is required", fields["website"])
}

func TestValidateEmailGate_BadEmail(t *testing.T) {
	v := New()
	err := v.Validate(models.EmailGateData{Email: "not-an-email", Website: "summitgear.com"})
	require.Error(t, err)

	var ve apperrors.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please enter a valid email address", ve.Fields()["email"])
}

func TestValidateLead_RequiredFields(t *testing.T) {
	v := New()
	err := v.Validate(models.LeadData{})
	require.Error(t, err)

	var ve apperrors.ValidationErrors
	require.ErrorAs(t, err, &ve)
	fields := ve.Fields()
	assert.Equal(t, "First name is required", fields["first_name"])
	assert.Equal(t, "Last name is required", fields["last_name"])
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "Company name is required", fields["company"])
	assert.Equal(t, "Business type is required", fields["business_type"])
}

func TestValidateLead_OptionalPhone(t *testing.T) {
	v := New()
	lead := models.LeadData{
		FirstName:    "Avery",
		LastName:     "Stone",
		Email:        "avery@trailworks.com",
		Company:      "Trailworks",
		BusinessType: "retailer",
	}
	assert.NoError(t, v.Validate(lead))

	lead.Phone = "+1 (555) 123-4567"
	assert.NoError(t, v.Validate(lead))

	lead.Phone = "abc"
	err := v.Validate(lead)
	require.Error(t, err)
	var ve apperrors.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please enter a valid phone number", ve.Fields()["phone"])
}

func TestIsValidWebsite(t *testing.T) {
	assert.True(t, IsValidWebsite("summitgear.com"))
	assert.True(t, IsValidWebsite("https://summitgear.com"))
	assert.True(t, IsValidWebsite("http://summitgear.com/shop"))
	assert.False(t, IsValidWebsite(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+15551234567"))
	assert.True(t, IsValidPhone("555-123-4567"))
	assert.True(t, IsValidPhone("(555) 123 4567"))
	assert.False(t, IsValidPhone("abc"))
	assert.False(t, IsValidPhone("0"))
	assert.False(t, IsValidPhone(""))
}
