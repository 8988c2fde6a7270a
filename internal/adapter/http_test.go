// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт адаптер с заданным таймаутом
func newTestAdapter(t *testing.T, timeout time.Duration) PaymentAdapter {
	t.Helper()
	return NewHTTPPaymentAdapter(config.ClientAdapter{
		BaseURL:        "http://127.0.0.1:1/",
		RequestTimeout: timeout,
		UserAgent:      "EBANX-PTP-Tester/TUI",
	}, logger.Nop())
}

// newPaymentAPI поднимает фейковый платёжный API на chi
func newPaymentAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/ws/direct", handler)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func directRequest(baseURL string) models.DirectRequest {
	return models.DirectRequest{
		BaseURL: baseURL,
		PTP:     "ptp-visa-ng",
		Body: models.Payload{
			"integration_key": "live_key",
			"operation":       "request",
			"payment":         map[string]any{"amount_total": json.Number("100.50"), "note": "a&b"},
		},
	}
}

// ── Direct ──────────────────────────────────────────────────────────────────

func TestDirect_SendsHeadersAndBody(t *testing.T) {
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "ptp-visa-ng", r.Header.Get("X-EBANX-Custom-Payment-Type-Profile"))
		assert.Equal(t, "EBANX-PTP-Tester/TUI", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"integration_key":"live_key","operation":"request","payment":{"amount_total":100.50,"note":"a&b"}}`, string(body))
		assert.Contains(t, string(body), `"amount_total":100.50`)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","payment":{"hash":"abc"}}`))
	})

	resp, err := newTestAdapter(t, 5*time.Second).Direct(context.Background(), directRequest(srv.URL+"/"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.Reason)
	assert.Equal(t, models.StatusSuccess, resp.Class)
	assert.True(t, resp.IsJSON())
	assert.Equal(t, "SUCCESS", resp.Body.(map[string]any)["status"])
	assert.Empty(t, resp.RedirectURL)
}

func TestDirect_TrailingSlashesTrimmed(t *testing.T) {
	paths := make(chan string, 1)
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
	})

	resp, err := newTestAdapter(t, 5*time.Second).Direct(context.Background(), directRequest(srv.URL+"///"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/ws/direct", <-paths)
}

func TestDirect_ErrorStatusIsNotAnError(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		class models.StatusClass
	}{
		{name: "client error", code: http.StatusBadRequest, class: models.StatusClientError},
		{name: "server error", code: http.StatusBadGateway, class: models.StatusServerError},
		{name: "redirect", code: http.StatusNotModified, class: models.StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			})

			resp, err := newTestAdapter(t, 5*time.Second).Direct(context.Background(), directRequest(srv.URL))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.class, resp.Class)
			assert.Equal(t, http.StatusText(tt.code), resp.Reason)
		})
	}
}

func TestDirect_NonJSONBodyKeptRaw(t *testing.T) {
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>upstream exploded</html>"))
	})

	resp, err := newTestAdapter(t, 5*time.Second).Direct(context.Background(), directRequest(srv.URL))
	require.NoError(t, err)

	assert.False(t, resp.IsJSON())
	assert.Equal(t, "<html>upstream exploded</html>", resp.Raw)
	assert.Equal(t, models.StatusServerError, resp.Class)
}

func TestDirect_RedirectURL(t *testing.T) {
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS","redirect_url":"https://3ds.example/challenge?id=1&x=2"}`))
	})

	resp, err := newTestAdapter(t, 5*time.Second).Direct(context.Background(), directRequest(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "https://3ds.example/challenge?id=1&x=2", resp.RedirectURL)
}

func TestDirect_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	timeout := 2 * time.Second
	start := time.Now()
	_, err := newTestAdapter(t, timeout).Direct(context.Background(), directRequest(addr))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotEmpty(t, err.Error())
	assert.Less(t, time.Since(start), timeout+time.Second)
}

func TestDirect_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	timeout := 200 * time.Millisecond
	start := time.Now()
	_, err := newTestAdapter(t, timeout).Direct(context.Background(), directRequest(srv.URL))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDirect_EmptyBaseURLUsesDefault(t *testing.T) {
	hits := make(chan struct{}, 1)
	srv := newPaymentAPI(t, func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
	})

	a := NewHTTPPaymentAdapter(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	_, err := a.Direct(context.Background(), directRequest(""))
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestDirect_InvalidBaseURL(t *testing.T) {
	_, err := newTestAdapter(t, time.Second).Direct(context.Background(), directRequest("sandbox.ebanx.com"))
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestExtractRedirectURL(t *testing.T) {
	assert.Equal(t, "u", ExtractRedirectURL(map[string]any{"redirect_url": "u"}))
	assert.Equal(t, "", ExtractRedirectURL(map[string]any{"payment": map[string]any{"redirect_url": "nested"}}))
	assert.Equal(t, "", ExtractRedirectURL(map[string]any{"redirect_url": 5}))
	assert.Equal(t, "", ExtractRedirectURL([]any{"x"}))
	assert.Equal(t, "", ExtractRedirectURL(nil))
}

func TestReasonPhrase(t *testing.T) {
	assert.Equal(t, "Created", reasonPhrase("201 Created", 201))
	assert.Equal(t, "Custom Reason", reasonPhrase("299 Custom Reason", 299))
	assert.Equal(t, "Not Found", reasonPhrase("", 404))
}
