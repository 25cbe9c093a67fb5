package phonebook

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=directory.go -destination=../mock/directory_mock.go -package=mock

// Directory is the remote, authoritative store of phonebook entries.
//
// Implementations report a missing entry on Update or Delete with an error
// that wraps adapter.ErrNotFound; every other failure is treated as the
// directory being unavailable.
type Directory interface {
	// List returns every entry known to the directory in insertion order.
	List(ctx context.Context) ([]models.Person, error)

	// Create stores a new entry and returns it with the server-assigned ID.
	Create(ctx context.Context, input models.PersonInput) (models.Person, error)

	// Update replaces the entry identified by id with person and returns the
	// stored result.
	Update(ctx context.Context, id int64, person models.Person) (models.Person, error)

	// Delete removes the entry identified by id.
	Delete(ctx context.Context, id int64) error
}
