package apperr

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when the input fails entity validation.
var ErrInvalid = errors.New("invalid input")

// ErrInvalidArgument indicates a malformed identifier.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrStoreUnavailable indicates that the document store is unreachable or not configured.
var ErrStoreUnavailable = errors.New("store unavailable")

// FieldViolation describes a single failed constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of an entity.
// It matches ErrInvalid with errors.Is.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+":"+f.Rule)
	}
	return ErrInvalid.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Has reports whether the field was rejected.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
