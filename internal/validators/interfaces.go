// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Validators return a *ValidationError listing every invalid field rather
// than stopping at the first one, so the HTTP layer can report them all.
package validators

import "context"

// Validator checks one payload type: models.RegisterRequest and
// models.LoginRequest for the user validator, models.PostInput and
// models.Pagination for the post validator. Pointers are accepted too.
//
// fields names the checks to run ("email", "title", "skip", ...); with no
// fields every check for the payload type runs. Other payload types give
// ErrUnsupportedType, unknown names ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, input any, fields ...string) error
}
