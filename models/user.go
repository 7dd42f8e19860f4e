// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// PasswordHash is never serialized; only the bcrypt output is ever stored.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Email is the unique login identifier. Uniqueness is enforced by the
	// datastore.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// FullName is the optional display name.
	FullName *string `json:"full_name,omitempty"`

	// IsActive is false for disabled accounts. Disabled accounts cannot log
	// in and are rejected on every authenticated request.
	IsActive bool `json:"is_active"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
