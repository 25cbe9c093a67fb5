// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Person is a single phonebook entry.
//
// ID is assigned by the directory server when the entry is created and never
// changes afterwards. Name and Number are free-form strings; the server only
// requires Name to be non-blank.
type Person struct {
	// ID is the server-assigned identifier of the entry.
	ID int64 `json:"id"`

	// Name is the display name of the contact. Names are compared
	// case-insensitively when the client looks for duplicates.
	Name string `json:"name"`

	// Number is the phone number as typed by the user.
	Number string `json:"number"`
}

// PersonInput is the request body accepted by the create and update
// endpoints. It carries only the user-editable fields; the identifier comes
// from the URL path.
type PersonInput struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Input returns the editable part of p as a [PersonInput].
func (p Person) Input() PersonInput {
	return PersonInput{Name: p.Name, Number: p.Number}
}
