package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		field := errs[0]
		return NewInvalidPayloadError(fmt.Sprintf("Field '%s' failed on '%s' validation", field.Field(), field.Tag()))
	}
	return NewInvalidPayloadError("Invalid request payload")
}
