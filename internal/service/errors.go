package service

import "errors"

// User input errors. They abort the operation and are shown to the operator
// as is.
var (
	ErrNoCardSelected      = errors.New("select a card first")
	ErrNoAPMSelected       = errors.New("select an APM profile first")
	ErrNoPTPSelected       = errors.New("select a PTP first")
	ErrNoIntegrationKey    = errors.New("enter the integration key")
	ErrInvalidPayload      = errors.New("payload is not valid JSON")
	ErrDescriptionRequired = errors.New("a description is required")
)
