package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProductType is returned when the product type is neither
	// "solid" nor "liquid".
	ErrInvalidProductType = errors.New("invalid product type")

	// ErrInvalidNumericField is wrapped by every *FieldError.
	ErrInvalidNumericField = errors.New("invalid numeric field")

	// ErrInputClosed is returned when the input ends before a prompt is answered.
	ErrInputClosed = errors.New("input closed")
)

// Field names one of the numeric prompts.
type Field string

const (
	FieldServingSize Field = "serving size"
	FieldCalories    Field = "calories"
	FieldSugar       Field = "sugar"
	FieldFat         Field = "fat"
	FieldSalt        Field = "salt"
)

// FieldError reports a numeric answer that was not a positive number.
type FieldError struct {
	Field Field
	Input string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Input)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidNumericField
}

// Message returns the single line shown to the user for err.
func Message(err error) string {
	var fe *FieldError
	switch {
	case errors.As(err, &fe):
		if fe.Field == FieldServingSize {
			return "Invalid serving size. Please enter a positive number."
		}
		return fmt.Sprintf("Invalid %s value. Please enter a positive number.", fe.Field)
	case errors.Is(err, ErrInvalidProductType):
		return "Invalid product type. Please enter either 'solid' or 'liquid'."
	case errors.Is(err, ErrInputClosed):
		return "Input closed before all values were entered."
	}
	return "Error: " + err.Error()
}
