package store

import "errors"

// Sentinel errors returned by the flat-file stores and the catalog indexes.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrPTPListNotFound is returned when the PTP list file does not exist.
	// Unlike the catalogs the list is never seeded.
	ErrPTPListNotFound = errors.New("ptp list file not found")

	// ErrMalformedCatalog is returned when a catalog file exists but does not
	// decode into the expected shape.
	ErrMalformedCatalog = errors.New("malformed catalog file")

	// ErrWritingFile is returned when a catalog or preferences file cannot be
	// written.
	ErrWritingFile = errors.New("failed to write file")

	// ErrCardNotFound is returned when no card in the index carries the
	// requested ID.
	ErrCardNotFound = errors.New("card not found")

	// ErrAPMNotFound is returned when no APM profile in the index carries the
	// requested ID.
	ErrAPMNotFound = errors.New("apm profile not found")
)
