package service

import (
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

type Services struct {
	PersonService  PersonService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	personService := NewPersonValidationService().
		Wrap(NewPersonService(repositories.PersonRepository, logger))

	return &Services{
		PersonService:  personService,
		AppInfoService: appInfoService,
	}, nil
}
