package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// Error types reported in FieldError.Type.
const (
	TypeMissing      = "value_error.missing"
	TypeEmail        = "value_error.email"
	TypeTooLong      = "value_error.any_str.max_length"
	TypeGreaterEqual = "value_error.number.not_ge"
	TypeInteger      = "type_error.integer"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Loc  []string
	Msg  string
	Type string
}

// ValidationError collects every invalid field of one input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) add(loc []string, msg, typ string) {
	e.Fields = append(e.Fields, FieldError{Loc: loc, Msg: msg, Type: typ})
}

// orNil returns e only when at least one field failed.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
