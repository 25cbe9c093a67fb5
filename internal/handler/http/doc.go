// Package http implements the REST transport of the phonebook server.
//
// It wires chi routes for the person resource and the version endpoint, the
// request handlers, and the middleware chain (panic recovery, trace IDs,
// access logging, gzip and per-request timeouts) that runs before requests
// reach the service layer.
package http
