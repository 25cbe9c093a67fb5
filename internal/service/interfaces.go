package service

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PersonService is the phonebook use-case layer behind the REST API.
type PersonService interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, id int64) (models.Person, error)
	Create(ctx context.Context, input models.PersonInput) (models.Person, error)
	// Update stores person under id; the ID inside person is ignored.
	Update(ctx context.Context, id int64, person models.Person) (models.Person, error)
	Delete(ctx context.Context, id int64) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PersonServiceWrapper decorates a PersonService, for example with
// validation.
type PersonServiceWrapper interface {
	Wrap(PersonService) PersonService
}
