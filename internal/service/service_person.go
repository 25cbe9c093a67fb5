package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

type personService struct {
	personRepository store.PersonRepository

	logger *logger.Logger
}

// NewPersonService returns the storage-backed [PersonService]. Names and
// numbers are trimmed before they are stored.
func NewPersonService(personRepository store.PersonRepository, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		logger:           logger,
	}
}

func (p *personService) List(ctx context.Context) ([]models.Person, error) {
	return p.personRepository.List(ctx)
}

func (p *personService) Get(ctx context.Context, id int64) (models.Person, error) {
	return p.personRepository.Get(ctx, id)
}

func (p *personService) Create(ctx context.Context, input models.PersonInput) (models.Person, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Number = strings.TrimSpace(input.Number)

	created, err := p.personRepository.Create(ctx, input)
	if err != nil {
		return models.Person{}, err
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Msg("person created")
	return created, nil
}

func (p *personService) Update(ctx context.Context, id int64, person models.Person) (models.Person, error) {
	person.ID = id
	person.Name = strings.TrimSpace(person.Name)
	person.Number = strings.TrimSpace(person.Number)

	return p.personRepository.Update(ctx, person)
}

func (p *personService) Delete(ctx context.Context, id int64) error {
	if err := p.personRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("person deleted")
	return nil
}
