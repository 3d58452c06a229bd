package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{namespace} is required",
		"gte":      "{namespace} must be greater than or equal to {param}",
		"lte":      "{namespace} must be less than or equal to {param}",
		"oneof":    "{namespace} must be one of {param}",
		"max":      "{namespace} must be less than or equal to {param}",
		"min":      "{namespace} must be greater than or equal to {param}",
		"unique":   "{namespace} must not repeat {param}",
		"gtfield":  "{namespace} must be after {param}",
		"gtefield": "{namespace} must not be before {param}",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{namespace}", valErr.Namespace())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
