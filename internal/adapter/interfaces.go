// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the blog API.
//
// The primary abstraction is [BlogAPI]; [NewHTTPBlogAdapter] returns the
// HTTP/REST implementation. Error envelopes returned by the server are
// decoded into [*APIError] values that match the sentinels in errors.go via
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlogAPI defines communication with the blog server. Implementations keep
// the bearer token obtained from Register or Login and attach it to every
// authenticated request.
type BlogAPI interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ListPosts returns one page of posts. The server clamps the limit.
	ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error)

	GetPost(ctx context.Context, id int64) (models.Post, error)

	// CreatePost requires a token.
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)

	// DeletePost requires a token.
	DeletePost(ctx context.Context, id int64) error

	// Health returns the server health report. An unhealthy server answers
	// 503 with a report body; the report is returned together with
	// [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)
}
