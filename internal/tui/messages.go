package tui

import "github.com/MKhiriev/go-phonebook/internal/phonebook"

// outcomeMsg carries the result of a finished directory call.
type outcomeMsg struct {
	outcome phonebook.Outcome
}

// expiryMsg is sent by the notification timers.
type expiryMsg struct {
	expiry phonebook.Expiry
}

// RefreshMsg asks the model to reload the phonebook from the directory.
type RefreshMsg struct{}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	number string
	err    error
}
