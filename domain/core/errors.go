package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Schema errors
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column name")

	// Intake errors
	ErrEmptyDataset      = errors.New("dataset has no header row")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedFile     = errors.New("file could not be parsed")

	// Coercion errors
	ErrNotNumeric = errors.New("value is not numeric")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewDuplicateColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateColumn, column)
}

func NewUnsupportedFormatError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

func NewMalformedFileError(name string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, cause)
}

func NewNotNumericError(raw string) error {
	return fmt.Errorf("%w: %q", ErrNotNumeric, raw)
}

// Error checking helpers
func IsColumnNotFoundError(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

// IsInputError reports errors caused by the uploaded file itself
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyDataset) || errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrMalformedFile)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrColumnNotFound) || errors.Is(err, ErrDuplicateColumn)
}
