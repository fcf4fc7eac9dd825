package domain

import "errors"

// Domain errors represent resolution failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a catalog query returned no matching record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a metadata file token with no resolver.
	ErrUnsupportedType = errors.New("unsupported metadata type")

	// ErrAuthRequired indicates no org connection is configured.
	ErrAuthRequired = errors.New("authentication required")

	// Infrastructure Errors.

	// ErrOrgQuery indicates the org rejected a query or could not be reached.
	ErrOrgQuery = errors.New("org query failed")

	// ErrBrowser indicates the operating system open command failed.
	ErrBrowser = errors.New("open browser")
)
