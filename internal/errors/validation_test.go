package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationErrors{}.Error())

	one := ValidationErrors{{Field: "email", Message: "Email is required"}}
	assert.Equal(t, "validation failed: Email is required", one.Error())

	two := ValidationErrors{
		{Field: "email", Message: "Email is required"},
		{Field: "website", Message: "Website URL is required"},
	}
	assert.Equal(t, "validation failed: 2 field errors", two.Error())
}

func TestValidationErrors_Fields(t *testing.T) {
	ve := ValidationErrors{
		{Field: "email", Message: "Email is required"},
		{Field: "email", Message: "second message is ignored"},
		{Field: "website", Message: "Website URL is required"},
	}

	fields := ve.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "Website URL is required", fields["website"])
}
