// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the payment
// API.
//
// The primary abstraction is [PaymentAdapter], which decouples the service
// layer from the underlying HTTP client. The package ships a resty-based
// implementation ([NewHTTPPaymentAdapter]).
//
// Transport failures are wrapped with [ErrTransport] so callers can tell them
// apart from API responses with an error status, which are not errors here.
package adapter

import (
	"context"

	"github.com/MKhiriev/ptp-tester/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_adapter_mock.go -package=mock

// PaymentAdapter sends requests to the direct payment endpoint.
type PaymentAdapter interface {
	// Direct POSTs req.Body to the endpoint derived from req.BaseURL with the
	// PTP header set. Any HTTP status is a successful exchange and is
	// returned as a [models.DirectResponse]; only a failure to complete the
	// exchange (DNS, refused connection, timeout) returns an error.
	Direct(ctx context.Context, req models.DirectRequest) (models.DirectResponse, error)
}
