package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"required_if": "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"roomnumber":  "Room number must be a 3-digit number",
	}

	// fieldMessages override messages for a single field, keyed by "<field>.<tag>".
	fieldMessages = map[string]string{
		"guestIds.min":    "At least one guest is required",
		"floorNumber.min": "Floor number must be a one-digit number",
		"floorNumber.max": "Floor number must be a one-digit number",
		"roomTypeId.min":  "Room type is required",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := fieldMessages[field+"."+valErr.Tag()]
			if errStr == "" {
				errStr = messages[valErr.Tag()]
			}

			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
