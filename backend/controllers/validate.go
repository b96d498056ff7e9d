package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationDetails flattens validator errors into a field → message map
// for the error envelope's details.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["body"] = err.Error()
		return details
	}
	for _, fe := range errs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			details[field] = field + " is required"
		case "email":
			details[field] = "Invalid email address"
		case "min":
			details[field] = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "eqfield":
			details[field] = "Passwords don't match"
		case "gt":
			details[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		default:
			details[field] = field + " is invalid"
		}
	}
	return details
}
