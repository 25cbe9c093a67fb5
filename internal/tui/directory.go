package tui

import (
	"context"

	"github.com/MKhiriev/go-phonebook/internal/phonebook"
)

// Directory is the remote phonebook as seen by the UI: the entries plus the
// server version shown in the header.
type Directory interface {
	phonebook.Directory

	Version(ctx context.Context) (string, error)
}

// scheduler starts the countdown of a notification expiry.
type scheduler interface {
	Schedule(e phonebook.Expiry)
}
