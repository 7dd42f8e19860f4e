// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with the claim set used by the service.
//
// The "sub" claim carries the user's email and "id" carries the numeric user
// ID. The token is signed, not encrypted: claims must never hold secrets.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, ...).
	jwt.RegisteredClaims

	// UserID is the "id" claim.
	UserID int64 `json:"id"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Email returns the "sub" claim.
func (t *Token) Email() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
