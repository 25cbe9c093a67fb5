package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-phonebook/models"
)

const personsTable = "persons"

var personColumns = []string{"id", "name", "number"}

const returningPerson = "RETURNING id, name, number"

func buildListPersonsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(personColumns...).
		From(personsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetPersonQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(personColumns...).
		From(personsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePersonQuery(b sq.StatementBuilderType, input models.PersonInput) (string, []any, error) {
	query, args, err := b.Insert(personsTable).
		Columns("name", "number").
		Values(input.Name, input.Number).
		Suffix(returningPerson).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePersonQuery(b sq.StatementBuilderType, person models.Person) (string, []any, error) {
	query, args, err := b.Update(personsTable).
		Set("name", person.Name).
		Set("number", person.Number).
		Where(sq.Eq{"id": person.ID}).
		Suffix(returningPerson).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePersonQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(personsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
