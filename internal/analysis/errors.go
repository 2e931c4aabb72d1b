package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported through ErrorKind.
const (
	KindValidation       = "validation"
	KindInsufficientData = "insufficient_data"
)

// ErrorClassifier lets errors declare a coarse classification so callers can
// choose a hint without matching on concrete types.
type ErrorClassifier interface {
	ErrorKind() string
}

// ErrorKind returns the classification of err, or "" when err does not carry one.
func ErrorKind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}

// MissingFieldError reports a raw record that lacks a required field.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Index, e.Field)
}

func (e *MissingFieldError) ErrorKind() string { return KindValidation }

// OutOfRangeError reports a field whose value falls outside its domain.
type OutOfRangeError struct {
	Index int
	Field string
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("record %d: field %q value %s is out of range", e.Index, e.Field, e.Value)
}

func (e *OutOfRangeError) ErrorKind() string { return KindValidation }

// InsufficientDataError reports a regression with fewer than two usable rows.
type InsufficientDataError struct {
	Predictor string
	Response  string
	Rows      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("fit %s ~ %s: need at least 2 rows with both fields defined, have %d",
		e.Response, e.Predictor, e.Rows)
}

func (e *InsufficientDataError) ErrorKind() string { return KindInsufficientData }

// DegenerateInputError reports a predictor with zero variance.
type DegenerateInputError struct {
	Field string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("fit: predictor %q has zero variance", e.Field)
}

func (e *DegenerateInputError) ErrorKind() string { return KindInsufficientData }

// UnknownFieldError reports a column name that does not exist, or exists with
// the wrong kind for the requested operation.
type UnknownFieldError struct {
	Field     string
	Found     bool
	Want      ColumnKind
	Available []string
}

func (e *UnknownFieldError) Error() string {
	var b strings.Builder
	if e.Found {
		fmt.Fprintf(&b, "column %q is not a %s column", e.Field, e.Want)
	} else {
		fmt.Fprintf(&b, "unknown column %q", e.Field)
	}
	if len(e.Available) > 0 {
		b.WriteString(" (available: ")
		b.WriteString(strings.Join(e.Available, ", "))
		b.WriteString(")")
	}
	return b.String()
}

func (e *UnknownFieldError) ErrorKind() string { return KindValidation }
