// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the phonebook client runtime.
//
// It wires the terminal UI and the background refresh worker into a single
// process lifecycle.
package client
