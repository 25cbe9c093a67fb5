package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-phonebook/models"
)

// Field names accepted by [PersonValidator].
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldNumber = "number"
)

const (
	MaxNameLength   = 256
	MaxNumberLength = 64
)

// PersonValidator validates [models.Person] and [models.PersonInput].
type PersonValidator struct{}

func NewPersonValidator() Validator {
	return &PersonValidator{}
}

func (v *PersonValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PersonInput:
		return v.validateInput(value, fields...)
	case *models.PersonInput:
		return v.validateInput(*value, fields...)

	case models.Person:
		return v.validatePerson(value, fields...)
	case *models.Person:
		return v.validatePerson(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PersonValidator) validateInput(input models.PersonInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldNumber}
	}

	return v.validateFields(models.Person{Name: input.Name, Number: input.Number}, fields)
}

func (v *PersonValidator) validatePerson(person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldNumber}
	}

	return v.validateFields(person, fields)
}

func (v *PersonValidator) validateFields(person models.Person, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldID:
			if person.ID <= 0 {
				return ErrInvalidPersonID
			}
		case FieldName:
			if strings.TrimSpace(person.Name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(person.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldNumber:
			if utf8.RuneCountInString(person.Number) > MaxNumberLength {
				return ErrNumberTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
