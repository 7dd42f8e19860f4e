package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUserIsDisabled          = errors.New("user is disabled")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrDuplicateIdentity       = errors.New("email already registered")
	ErrUserNotFound            = errors.New("user not found")

	ErrPostNotFound = errors.New("post not found")
	ErrConflict     = errors.New("conflicting data")
	ErrStorage      = errors.New("storage error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
