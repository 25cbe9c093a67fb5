package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/app"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order, so more specific sentinels come first.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{ErrInvalidPersonID, errorResponse{http.StatusBadRequest, app.MsgInvalidPersonID}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrPersonNotFound, errorResponse{http.StatusNotFound, app.MsgPersonNotFound}},
	{store.ErrStoreUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStoreUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with the plain-text message mapped to it.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg(resp.message)

	http.Error(w, resp.message, resp.status)
}
