package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(v); err != nil {
		panic(fmt.Sprintf("register domain validations: %v", err))
	}
	return v
}

// RegisterValidations adds the "category" and "yearmonth" tags to v.
// The HTTP layer registers them on gin's binding engine as well.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return IsMonthToken(fl.Field().String())
	})
}

// validateStruct runs the struct tags and folds failures into one ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return apperrors.NewValidationError("%s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "category":
		return fmt.Sprintf("%s %q is not a known category", field, fe.Value())
	case "yearmonth":
		return field + " must be in YYYY-MM format"
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
