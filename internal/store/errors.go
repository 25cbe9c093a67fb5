package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrPersonNotFound is returned when no entry has the requested ID.
	ErrPersonNotFound = errors.New("person not found")

	// ErrStoreUnavailable wraps driver errors classified as [Retryable]:
	// lost connections, a busy SQLite file, serialization failures.
	ErrStoreUnavailable = errors.New("store temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when result rows cannot be scanned.
	ErrScanningRows = errors.New("failed to scan person rows")

	// ErrUnsupportedDSN is returned for a DSN no driver can open.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
