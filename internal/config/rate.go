// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rate is a fixed-window policy: at most Requests per Window.
//
// It implements encoding.TextUnmarshaler, so it can be read from
// environment variables, flags and JSON strings alike.
type Rate struct {
	Requests int
	Window   time.Duration
}

var windowUnits = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// ParseRate parses "<requests>/<window>". The window is either a Go duration
// ("1m", "30s") or a unit name ("second", "minute", "hour", "day").
func ParseRate(s string) (Rate, error) {
	count, window, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rate{}, fmt.Errorf("%w: %q must look like 10/1m", ErrInvalidRate, s)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || requests < 1 {
		return Rate{}, fmt.Errorf("%w: request count in %q must be a positive integer", ErrInvalidRate, s)
	}

	window = strings.ToLower(strings.TrimSpace(window))
	if d, found := windowUnits[window]; found {
		return Rate{Requests: requests, Window: d}, nil
	}

	d, err := time.ParseDuration(window)
	if err != nil || d <= 0 {
		return Rate{}, fmt.Errorf("%w: window in %q must be a positive duration", ErrInvalidRate, s)
	}

	return Rate{Requests: requests, Window: d}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Blank text yields the
// zero Rate, mirroring String, so the default policy applies.
func (r *Rate) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*r = Rate{}
		return nil
	}

	parsed, err := ParseRate(string(text))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// String renders the rate back as "<requests>/<window>".
func (r Rate) String() string {
	if r.IsZero() {
		return ""
	}
	return strconv.Itoa(r.Requests) + "/" + r.Window.String()
}

// Set implements flag.Value.
func (r *Rate) Set(s string) error {
	return r.UnmarshalText([]byte(s))
}

// IsZero reports whether the rate was never set.
func (r Rate) IsZero() bool {
	return r.Requests == 0 && r.Window == 0
}
