// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorDetail describes a single invalid input field.
type ErrorDetail struct {
	// Loc is the location of the field, e.g. ["body", "email"].
	Loc []string `json:"loc,omitempty"`

	// Msg is a human-readable message.
	Msg string `json:"msg"`

	// Type is a machine-readable error kind, e.g. "value_error.missing".
	Type string `json:"type"`
}

// ErrorResponse is the uniform error envelope returned by every failing
// request.
type ErrorResponse struct {
	Success   bool          `json:"success"`
	Error     string        `json:"error"`
	ErrorCode string        `json:"error_code,omitempty"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Path      string        `json:"path"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services"`
}
