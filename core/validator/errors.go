package validator

import "fmt"

// MissingFieldError reports a bound spec naming a field the table does not
// carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %s not present in table", e.Field)
}

// EmptyTableError reports a field with zero non-null values; quantiles and
// central tendency are undefined.
type EmptyTableError struct {
	Field string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("field %s has no non-null values", e.Field)
}

// InvalidBoundsError reports a malformed bound specification.
type InvalidBoundsError struct {
	Field  string
	Reason string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("invalid bounds for field %s: %s", e.Field, e.Reason)
}
