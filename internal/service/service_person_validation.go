package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/validators"
	"github.com/MKhiriev/go-phonebook/models"
)

// PersonValidationService rejects invalid input with an error wrapping
// [ErrInvalidDataProvided] before the wrapped service sees it.
type PersonValidationService struct {
	inner     PersonService
	validator validators.Validator
}

func NewPersonValidationService() PersonServiceWrapper {
	return &PersonValidationService{
		validator: validators.NewPersonValidator(),
	}
}

func (v *PersonValidationService) List(ctx context.Context) ([]models.Person, error) {
	return v.inner.List(ctx)
}

func (v *PersonValidationService) Get(ctx context.Context, id int64) (models.Person, error) {
	if err := v.validator.Validate(ctx, models.Person{ID: id}, validators.FieldID); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, id)
}

func (v *PersonValidationService) Create(ctx context.Context, input models.PersonInput) (models.Person, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, input)
}

func (v *PersonValidationService) Update(ctx context.Context, id int64, person models.Person) (models.Person, error) {
	person.ID = id
	if err := v.validator.Validate(ctx, person); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, person)
}

func (v *PersonValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Person{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *PersonValidationService) Wrap(wrapped PersonService) PersonService {
	v.inner = wrapped
	return v
}
