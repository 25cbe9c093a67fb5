package http

import (
	"time"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
)

type Handler struct {
	persons service.PersonService
	appInfo service.AppInfoService

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		persons:        services.PersonService,
		appInfo:        services.AppInfoService,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
