// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the phonebook REST API on behalf of the terminal
// client.
//
// [HTTPDirectory] implements the remote directory over resty. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors of this
// package, so callers match them with [errors.Is] (for example
// [ErrNotFound] for 404).
package adapter
