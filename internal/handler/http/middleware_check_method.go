// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method answers 404 instead of
// chi's 405, so /api/persons/{id} looks the same for a missing entry and a
// wrong verb.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			// only reachable when called outside the router
			router.ServeHTTP(w, r)
			return
		}

		w.Header().Del("Allow")
		http.NotFound(w, r)
	}
}
