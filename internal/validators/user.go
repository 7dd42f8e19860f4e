// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-blog-api/models"
)

// Field names understood by UserValidator.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// UserValidator validates registration and login payloads.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case models.LoginRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			validateEmail(verr, email)
		case FieldPassword:
			switch {
			case password == "":
				verr.add([]string{"body", FieldPassword}, "field required", TypeMissing)
			case len(password) > MaxPasswordBytes:
				verr.add([]string{"body", FieldPassword}, "ensure this value has at most 72 bytes", TypeTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func validateEmail(verr *ValidationError, email string) {
	loc := []string{"body", FieldEmail}
	if strings.TrimSpace(email) == "" {
		verr.add(loc, "field required", TypeMissing)
		return
	}

	// ParseAddress also accepts "Name <a@b.c>"; only a bare address is valid here
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		verr.add(loc, "value is not a valid email address", TypeEmail)
	}
}
