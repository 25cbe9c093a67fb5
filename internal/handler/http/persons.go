package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listPersons")
		return
	}
	if persons == nil {
		persons = []models.Person{}
	}

	h.writePayload(w, r, persons, http.StatusOK)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	id, err := personIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getPerson")
		return
	}

	person, err := h.persons.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getPerson")
		return
	}

	h.writePayload(w, r, person, http.StatusOK)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	var input models.PersonInput
	if err := utils.ReadJSON(r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createPerson")
		return
	}

	created, err := h.persons.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "*Handler.createPerson")
		return
	}

	w.Header().Set("Location", "/api/persons/"+strconv.FormatInt(created.ID, 10))
	h.writePayload(w, r, created, http.StatusCreated)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := personIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updatePerson")
		return
	}

	var input models.PersonInput
	if err = utils.ReadJSON(r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.updatePerson")
		return
	}

	updated, err := h.persons.Update(r.Context(), id, models.Person{ID: id, Name: input.Name, Number: input.Number})
	if err != nil {
		writeError(w, r, err, "*Handler.updatePerson")
		return
	}

	h.writePayload(w, r, updated, http.StatusOK)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := personIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deletePerson")
		return
	}

	if err = h.persons.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deletePerson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writePayload(w http.ResponseWriter, r *http.Request, payload any, status int) {
	if _, err := utils.WriteJSON(w, payload, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func personIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPersonID, raw)
	}

	return id, nil
}
