package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/user/devjournal-go/apperror"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New()

// validationMessages maps "Struct.Field" to the message reported when that
// field fails validation. One message per field regardless of which rule
// failed; the wording is part of the API contract.
var validationMessages = map[string]string{
	"RegisterRequest.Name":     "name is required",
	"RegisterRequest.Email":    "please include a valid email",
	"RegisterRequest.Password": "please enter a password with 6 or more characters",
	"LoginRequest.Email":       "please include a valid email",
	"LoginRequest.Password":    "password is required",
}

// validateRequest runs struct validation and converts failures into a
// ValidationError carrying one message per failed field. Validation never
// touches the persistence layer.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// validator returns InvalidValidationError only for non-struct input,
		// which would be a programming error here.
		return apperror.NewInternalError("request validation failed", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := validationMessages[fe.StructNamespace()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		messages = append(messages, msg)
	}
	return apperror.NewValidationError(messages...)
}
