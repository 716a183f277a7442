// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "saleslens/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their JSON names
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its validate tags. Field failures become a ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		if _, seen := fields[name]; !seen {
			fields[name] = message(fe)
		}
	}

	return domainerrors.NewValidationError(fields)
}

// fieldPath drops the top-level struct name from the namespace, e.g. "salesArray[2].age"
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe playground.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isText {
			return "must be at least " + fe.Param() + " characters"
		}

		return "must be at least " + fe.Param()
	case "max":
		if isText {
			return "must be at most " + fe.Param() + " characters"
		}

		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
