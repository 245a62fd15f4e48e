package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts formatted numbers such as "+7 (999) 123-45-67".
var phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)

// New returns a validator with the custom tags registered and JSON field
// names used in error messages.
func New() *validator.Validate {
	v := validator.New()
	RegisterCustomValidators(v)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// RegisterCustomValidators adds the project-specific tags to v.
func RegisterCustomValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", validatePhone)
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.TrimSpace(fl.Field().String())
	if phone == "" {
		return true
	}
	if !phoneRegex.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}
