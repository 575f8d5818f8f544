// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response envelope for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into a json friendly envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg renders a binding validation failure for the response envelope.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "tier":
		return " is not a supported tier"
	case "keykind":
		return " is not a supported pix key kind"
	default:
		return " is invalid"
	}
}
