package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-api/models"
)

// Field names understood by PostValidator.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldSkip    = "skip"
	FieldLimit   = "limit"
)

// PostValidator validates post payloads and list pagination.
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostInput:
		return v.validatePostInput(value, fields...)
	case *models.PostInput:
		return v.validatePostInput(*value, fields...)
	case models.Pagination:
		return v.validatePagination(value, fields...)
	case *models.Pagination:
		return v.validatePagination(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostInput(input models.PostInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				verr.add([]string{"body", FieldTitle}, "field required", TypeMissing)
			}
		case FieldContent:
			if strings.TrimSpace(input.Content) == "" {
				verr.add([]string{"body", FieldContent}, "field required", TypeMissing)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validatePagination rejects negative values only. An over-large limit is
// clamped by the service, not reported.
func (v *PostValidator) validatePagination(p models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldSkip:
			if p.Skip < 0 {
				verr.add([]string{"query", FieldSkip}, "ensure this value is greater than or equal to 0", TypeGreaterEqual)
			}
		case FieldLimit:
			if p.Limit < 0 {
				verr.add([]string{"query", FieldLimit}, "ensure this value is greater than or equal to 0", TypeGreaterEqual)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}
