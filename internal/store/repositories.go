package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
)

// Repositories groups the server repositories and owns their connection.
type Repositories struct {
	PersonRepository PersonRepository

	db *DB
}

// NewRepositories connects to the database from cfg, applies migrations and
// builds every repository on top of it.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		PersonRepository: NewPersonRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
