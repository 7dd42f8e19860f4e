// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, request ID generation, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user's ID.
	UserIDCtxKey = contextKey("userID")

	// UserCtxKey is the key used to store the authenticated models.User.
	UserCtxKey = contextKey("user")

	// RequestIDCtxKey is the key used to store the request identifier.
	RequestIDCtxKey = contextKey("requestID")

	// StartTimeCtxKey is the key used to store the time the request entered
	// the pipeline.
	StartTimeCtxKey = contextKey("startTime")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: the value is found and has the correct int64 type
//   - ok == false: the value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRequestIDFromContext retrieves the request identifier from the context.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok
}
