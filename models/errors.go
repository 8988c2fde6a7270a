package models

import "errors"

var (
	// ErrPayloadNotObject is returned by [ParsePayload] for valid JSON that is
	// not an object (null, array, string, number).
	ErrPayloadNotObject = errors.New("payload is not a JSON object")
	// ErrPayloadTrailingData is returned by [ParsePayload] when more than one
	// JSON value is present.
	ErrPayloadTrailingData = errors.New("unexpected data after payload object")
)
