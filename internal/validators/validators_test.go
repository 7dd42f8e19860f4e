// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTypes(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)

	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[strings.Join(f.Loc, ".")] = f.Type
	}
	return out
}

// ---------------------------------------------------------------------------
// UserValidator
// ---------------------------------------------------------------------------

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   any
		wantErr map[string]string
	}{
		{
			name:  "valid register request",
			input: models.RegisterRequest{Email: "a@x.com", Password: "pw123456"},
		},
		{
			name:  "valid login request pointer",
			input: &models.LoginRequest{Email: "a@x.com", Password: "pw"},
		},
		{
			name:    "missing email and password",
			input:   models.LoginRequest{},
			wantErr: map[string]string{"body.email": TypeMissing, "body.password": TypeMissing},
		},
		{
			name:    "email without at sign",
			input:   models.RegisterRequest{Email: "not-an-email", Password: "pw"},
			wantErr: map[string]string{"body.email": TypeEmail},
		},
		{
			name:    "email without domain dot",
			input:   models.RegisterRequest{Email: "a@localhost", Password: "pw"},
			wantErr: map[string]string{"body.email": TypeEmail},
		},
		{
			name:    "display name form is rejected",
			input:   models.RegisterRequest{Email: "Alice <a@x.com>", Password: "pw"},
			wantErr: map[string]string{"body.email": TypeEmail},
		},
		{
			name:    "password longer than 72 bytes",
			input:   models.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("p", 73)},
			wantErr: map[string]string{"body.password": TypeTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantErr, fieldTypes(t, err))
		})
	}
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.LoginRequest{Email: "a@x.com"}, FieldEmail)
	require.NoError(t, err, "password is not checked when only email is requested")

	err = v.Validate(ctx, models.LoginRequest{Email: "a@x.com"}, "unknown")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.PostInput{})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// PostValidator
// ---------------------------------------------------------------------------

func TestPostValidator_PostInput(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.PostInput{Title: "T", Content: "C"}))

	err := v.Validate(ctx, &models.PostInput{Title: "  ", Content: ""})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"body.title": TypeMissing, "body.content": TypeMissing}, fieldTypes(t, err))
}

func TestPostValidator_Pagination(t *testing.T) {
	v := NewPostValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Pagination{Skip: 0, Limit: 150}), "over-large limit is clamped later")

	err := v.Validate(ctx, models.Pagination{Skip: -1, Limit: -5})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"query.skip": TypeGreaterEqual, "query.limit": TypeGreaterEqual}, fieldTypes(t, err))

	err = v.Validate(ctx, models.Pagination{Skip: -1}, FieldLimit)
	require.NoError(t, err)
}

func TestPostValidator_UnsupportedType(t *testing.T) {
	err := NewPostValidator().Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.orNil())

	verr.add([]string{"body", "title"}, "field required", TypeMissing)
	assert.Equal(t, "validation failed: body.title: field required", verr.Error())
	assert.ErrorIs(t, verr.orNil(), ErrValidation)
}
