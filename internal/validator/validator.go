// Package validator wraps go-playground/validator with the custom rules the
// contact forms need and translates failures into field -> message pairs.
package validator

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/ndevrinc/outdoor-quiz/internal/errors"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate checks the struct's validate tags and returns ValidationErrors on
// failure.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		if ve := apperrors.ToValidationErrors(err); len(ve) > 0 {
			return ve
		}
		return err
	}
	return nil
}

// ValidateWebsite accepts anything that parses as a URL once an https scheme
// is assumed for bare domains.
func ValidateWebsite(fl validator.FieldLevel) bool {
	return IsValidWebsite(fl.Field().String())
}

func IsValidWebsite(website string) bool {
	candidate := website
	if !strings.HasPrefix(candidate, "http") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	return err == nil && u.Host != ""
}

// ValidatePhone checks the digits after stripping spaces, dashes and
// parentheses.
func ValidatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func IsValidPhone(phone string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(stripped)
}

// RegisterCustomValidators registers all custom validators.
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("website", ValidateWebsite)
	validate.RegisterValidation("phone", ValidatePhone)

	// Report fields by their json name for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
