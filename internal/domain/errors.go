package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")

// MissingFieldError reports the first absent or empty required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

// InvalidFormatError reports a date field that failed to parse or an enum
// field holding a value outside its closed set. Value is set for enums only.
type InvalidFormatError struct {
	Field string
	Value string
}

func (e *InvalidFormatError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("Invalid value %q for field %s", e.Value, e.Field)
	}
	return "Invalid date format for " + e.Field
}

// UploadError wraps a blob-storage failure. Treated as a client-correctable
// input problem, not a server fault.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "Error uploading photo: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error { return e.Err }

// DerivedValueError wraps a code-generation failure.
type DerivedValueError struct {
	Err error
}

func (e *DerivedValueError) Error() string {
	return "Error generating QR code: " + e.Err.Error()
}

func (e *DerivedValueError) Unwrap() error { return e.Err }

// ConstraintViolationError is a store-level uniqueness or referential
// rejection translated into a client error.
type ConstraintViolationError struct {
	Message string
}

func (e *ConstraintViolationError) Error() string { return e.Message }

// IsClientFault reports whether err belongs to the 400-range taxonomy.
// Everything else (including ErrRecordNotFound, which maps to 404) is not.
func IsClientFault(err error) bool {
	var (
		missing    *MissingFieldError
		format     *InvalidFormatError
		upload     *UploadError
		derived    *DerivedValueError
		constraint *ConstraintViolationError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &format) ||
		errors.As(err, &upload) ||
		errors.As(err, &derived) ||
		errors.As(err, &constraint)
}
