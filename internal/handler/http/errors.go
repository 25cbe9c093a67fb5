// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPersonID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPersonID = errors.New("invalid person id in path")

	// ErrInvalidJSON is returned when the request body is not a valid
	// person document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
