// Package web defines common components for a web application.
package web

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for the first failed field, e.g.
// "Amount field is required".
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]

	return fe.Field() + fieldErrorMsg(fe)
}

func fieldErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "uuid":
		return " must be a valid UUID"
	case "amount":
		return " must be a positive decimal number"
	case "rate":
		return " must be a non-negative decimal number"
	case "recurrence":
		return " must be one of once, daily, weekly, monthly"
	case "oneof":
		return " must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	}

	return " is invalid"
}
