package apperror

import (
	"fmt"
	"net/http"
)

func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}

// Validation builds a 400 with a caller-supplied, field-specific message.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
