package store

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PersonRepository persists phonebook entries.
type PersonRepository interface {
	// List returns every entry ordered by ID, which is insertion order.
	List(ctx context.Context) ([]models.Person, error)
	// Get returns the entry id or [ErrPersonNotFound].
	Get(ctx context.Context, id int64) (models.Person, error)
	// Create inserts input and returns it with the assigned ID.
	Create(ctx context.Context, input models.PersonInput) (models.Person, error)
	// Update overwrites name and number of the entry person.ID.
	// A missing entry yields [ErrPersonNotFound].
	Update(ctx context.Context, person models.Person) (models.Person, error)
	// Delete removes the entry id. A missing entry yields [ErrPersonNotFound].
	Delete(ctx context.Context, id int64) error
}
