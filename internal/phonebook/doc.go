// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package phonebook implements the client-side state of the phonebook: the
// local record set, the search term, the pending form input and the two
// transient notification slots, plus the rules that keep all of it consistent
// with the remote directory.
//
// The package is split into small pieces that can be tested on their own:
//
//   - [Visible] derives the filtered view of the record set.
//   - [Resolve] decides whether an add request creates a new entry or updates
//     an existing one.
//   - [Notifications] and [Timers] manage the auto-expiring info and error
//     messages.
//   - [Book] owns all state and orchestrates calls to a [Directory].
//
// A [Book] never performs I/O itself. Operations that need the network return
// a [Call]; the caller runs it wherever it likes (the TUI runs it as a
// bubbletea command) and feeds the resulting [Outcome] back through
// [Book.Apply] on the event loop. Operations that need the user's consent
// return a [Confirmation] and resume through [Book.Decide].
package phonebook
