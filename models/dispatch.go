// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DirectRequest is a single request to the direct payment endpoint.
type DirectRequest struct {
	// BaseURL is the API root as typed by the operator; the endpoint path is
	// appended by the adapter.
	BaseURL string
	// PTP is sent as the custom payment type profile header.
	PTP string
	// Body is the unmasked payload.
	Body Payload
}

// DirectPath is the endpoint path appended to the base URL.
const DirectPath = "/ws/direct"

// HeaderPaymentTypeProfile carries the PTP of a request.
const HeaderPaymentTypeProfile = "X-EBANX-Custom-Payment-Type-Profile"

// URL returns the endpoint URL: the base URL without trailing slashes
// followed by [DirectPath].
func (r DirectRequest) URL() string {
	return strings.TrimRight(strings.TrimSpace(r.BaseURL), "/") + DirectPath
}

// StatusClass groups HTTP status codes for display.
type StatusClass int

const (
	StatusOther StatusClass = iota
	StatusSuccess
	StatusClientError
	StatusServerError
)

// ClassifyStatus maps an HTTP status code to its [StatusClass].
func ClassifyStatus(code int) StatusClass {
	switch {
	case code >= 200 && code < 300:
		return StatusSuccess
	case code >= 400 && code < 500:
		return StatusClientError
	case code >= 500:
		return StatusServerError
	default:
		return StatusOther
	}
}

// String returns a short human label.
func (c StatusClass) String() string {
	switch c {
	case StatusSuccess:
		return "Success"
	case StatusClientError:
		return "Client Error"
	case StatusServerError:
		return "Server Error"
	default:
		return "Other Status"
	}
}

// DirectResponse is what came back from the payment API.
type DirectResponse struct {
	StatusCode int
	Reason     string
	Class      StatusClass
	// Body is the decoded JSON body. It is nil when the body is not JSON.
	Body any
	// Raw is the body as received.
	Raw     string
	Elapsed time.Duration
	// RedirectURL is the 3-D Secure redirect URL, if the API returned one.
	RedirectURL string
}

// IsJSON reports whether the response body was valid JSON.
func (r DirectResponse) IsJSON() bool {
	return r.Body != nil
}

// DirectOutcome is the result of one dispatched request. Exactly one of
// Response and Err is meaningful.
type DirectOutcome struct {
	Request  DirectRequest
	Response DirectResponse
	Err      error
	// Finished is when the outcome was produced.
	Finished time.Time
}

// RequestDraft is what the operator has on screen when pressing send.
type RequestDraft struct {
	Mode Mode
	// ProfileID is the selected card or APM profile.
	ProfileID string
	// ProfileLabel names the profile in logs.
	ProfileLabel string
	Country      string

	PTP            string
	BaseURL        string
	IntegrationKey string

	// PayloadText is the editor text. It must parse.
	PayloadText string
	// Outgoing is the unmasked payload derived from the editor.
	Outgoing Payload
}
