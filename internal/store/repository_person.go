package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
)

// personRepository is the SQL implementation of [PersonRepository] over the
// "persons" table. It works with both SQLite and PostgreSQL.
type personRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPersonRepository constructs a [PersonRepository] backed by db.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating person repository")
	return &personRepository{
		db:     db,
		logger: logger,
	}
}

func (r *personRepository) List(ctx context.Context) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPersonsQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.List").Msg("error selecting persons")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		var p models.Person
		if err = rows.Scan(&p.ID, &p.Name, &p.Number); err != nil {
			log.Err(err).Str("func", "*personRepository.List").Msg("error scanning person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		persons = append(persons, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*personRepository.List").Msg("error iterating person rows")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	return persons, nil
}

func (r *personRepository) Get(ctx context.Context, id int64) (models.Person, error) {
	query, args, err := buildGetPersonQuery(r.db.builder, id)
	if err != nil {
		return models.Person{}, err
	}

	return r.queryPerson(ctx, "*personRepository.Get", query, args)
}

func (r *personRepository) Create(ctx context.Context, input models.PersonInput) (models.Person, error) {
	query, args, err := buildCreatePersonQuery(r.db.builder, input)
	if err != nil {
		return models.Person{}, err
	}

	return r.queryPerson(ctx, "*personRepository.Create", query, args)
}

func (r *personRepository) Update(ctx context.Context, person models.Person) (models.Person, error) {
	query, args, err := buildUpdatePersonQuery(r.db.builder, person)
	if err != nil {
		return models.Person{}, err
	}

	return r.queryPerson(ctx, "*personRepository.Update", query, args)
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePersonQuery(r.db.builder, id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Delete").Int64("id", id).Msg("error deleting person")
		return r.db.wrapError(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(err, ErrExecutingQuery)
	}
	if affected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

// queryPerson runs a statement returning a single person row. No row means
// [ErrPersonNotFound].
func (r *personRepository) queryPerson(ctx context.Context, funcName, query string, args []any) (models.Person, error) {
	log := logger.FromContext(ctx)

	var p models.Person
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Number)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Person{}, ErrPersonNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error querying person")
		return models.Person{}, r.db.wrapError(err, ErrExecutingQuery)
	}

	return p, nil
}
