package config

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tesseraerrors "github.com/alexisbeaulieu97/tessera/pkg/errors"
)

// convertValidationError turns validator failures into one ValidationError
// per field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !stdErrors.As(err, &ves) {
		return tesseraerrors.NewValidationError("gallery", err.Error(), err)
	}

	out := make(tesseraerrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		out = append(out, &tesseraerrors.ValidationError{
			Field:   field,
			Message: ruleMessage(fe),
			Err:     fe,
		})
	}
	return out
}

// fieldPath drops the root struct name from the yaml-named namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "go_layout":
		return fmt.Sprintf("%q is not a date layout", fe.Value())
	case "month_layout":
		return fmt.Sprintf("%q is not a month layout", fe.Value())
	case "iso_date":
		return fmt.Sprintf("%q is not a date in %s form", fe.Value(), ISODate)
	case "weekday":
		return fmt.Sprintf("%q is not a weekday", fe.Value())
	case "timezone":
		return fmt.Sprintf("%q is not a time zone", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldForLink(section, link int, field string) string {
	return fmt.Sprintf("navbar.sections[%d].links[%d].%s", section, link, field)
}
