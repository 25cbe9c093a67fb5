// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the phonebook server
// handlers and middleware.
//
// Msg* constants are written into plain-text HTTP response bodies and log
// entries so the wording stays the same across the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPersonID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidPersonID = "invalid person id"

	// MsgPersonNotFound is returned when no entry exists for the requested id.
	MsgPersonNotFound = "person not found"

	// MsgStoreUnavailable is returned when the database is temporarily
	// unreachable.
	MsgStoreUnavailable = "store unavailable"

	// MsgInternalServerError is returned for any other server-side failure.
	MsgInternalServerError = "internal server error"

	MsgRequestTimeout = "request timed out"
)
