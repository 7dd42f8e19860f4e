// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated: the server config enables no transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
