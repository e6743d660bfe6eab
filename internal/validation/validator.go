package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldDelimiter separates the columns of a snapshot record.
const FieldDelimiter = ", "

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewAccountInput is the data accepted when opening an account.
type NewAccountInput struct {
	Name   string `json:"name" validate:"required,snapshot_field"`
	Secret string `json:"secret" validate:"required,snapshot_field"`
}

// AmountInput carries a user supplied monetary amount.
type AmountInput struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_amount"`
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("snapshot_field", validateSnapshotField)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	// decimals are validated through their canonical string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and flattens field failures into one readable error.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, FormatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

// ErrInvalidInput is wrapped by every error returned from Struct.
var ErrInvalidInput = errors.New("invalid input")

// FormatFieldError renders a single rule failure.
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "snapshot_field":
		return fmt.Sprintf("%s must not contain %q or line breaks", fe.Field(), FieldDelimiter)
	case "positive_amount":
		return fmt.Sprintf("%s must be a number greater than zero", fe.Field())
	case "gt", "gtfield":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}

// Custom validation functions

// validateSnapshotField rejects text that would split or end a snapshot line
func validateSnapshotField(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return !strings.Contains(s, FieldDelimiter) && !strings.ContainsAny(s, "\r\n")
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
