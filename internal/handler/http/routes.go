package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Get("/api/persons", h.listPersons)
	router.Post("/api/persons", h.createPerson)
	router.Get("/api/persons/{id}", h.getPerson)
	router.Put("/api/persons/{id}", h.updatePerson)
	router.Delete("/api/persons/{id}", h.deletePerson)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
