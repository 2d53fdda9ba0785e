package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a product field that failed a type or value constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Panics only on a programming error (bad tag name).
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}
	return v
}

func validateName(name string) error {
	if err := validate.Var(name, "notblank"); err != nil {
		return newValidationError("name", "name cannot be empty")
	}
	return nil
}

func validatePrice(price float64) error {
	if err := validate.Var(price, "finite"); err != nil {
		return newValidationError("price", "price must be a number")
	}
	if err := validate.Var(price, "gte=0"); err != nil {
		return newValidationError("price", "price cannot be negative")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if err := validate.Var(quantity, "gte=0"); err != nil {
		return newValidationError("quantity", "quantity cannot be negative")
	}
	return nil
}

// ParsePrice converts user text into a price. Non-numeric text is reported
// as a ValidationError on the price field.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, newValidationError("price", "price must be a number")
	}
	return price, nil
}

// ParseQuantity converts user text into a quantity. Anything that is not a
// whole number is reported as a ValidationError on the quantity field.
func ParseQuantity(s string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, newValidationError("quantity", "quantity must be a whole number")
	}
	return quantity, nil
}
