package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/utils"
	"github.com/MKhiriev/ptp-tester/models"
)

type httpPaymentAdapter struct {
	client *utils.HTTPClient

	defaultBaseURL string

	logger *logger.Logger
}

// NewHTTPPaymentAdapter constructs the HTTP implementation of
// [PaymentAdapter]. The client applies adapterCfg.RequestTimeout to every
// request and sends adapterCfg.UserAgent. Requests with an empty base URL go
// to adapterCfg.BaseURL.
func NewHTTPPaymentAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) PaymentAdapter {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.UserAgent)

	return &httpPaymentAdapter{
		client:         client,
		defaultBaseURL: adapterCfg.BaseURL,
		logger:         logger.WithComponent("payment-adapter"),
	}
}

// Direct implements [PaymentAdapter].
func (h *httpPaymentAdapter) Direct(ctx context.Context, req models.DirectRequest) (models.DirectResponse, error) {
	if strings.TrimSpace(req.BaseURL) == "" {
		req.BaseURL = h.defaultBaseURL
	}
	if err := validateBaseURL(req.BaseURL); err != nil {
		return models.DirectResponse{}, err
	}

	endpoint := req.URL()
	h.logger.Info().
		Str("url", endpoint).
		Str("ptp", req.PTP).
		Msg("sending direct request")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(models.HeaderPaymentTypeProfile, req.PTP).
		SetBody([]byte(req.Body.Compact())).
		Post(endpoint)
	if err != nil {
		h.logger.Err(err).Str("url", endpoint).Msg("direct request failed")
		return models.DirectResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	code := resp.StatusCode()
	out := models.DirectResponse{
		StatusCode: code,
		Reason:     reasonPhrase(resp.Status(), code),
		Class:      models.ClassifyStatus(code),
		Raw:        string(resp.Body()),
		Elapsed:    resp.Time(),
	}
	out.Body = decodeBody(resp.Body())
	out.RedirectURL = ExtractRedirectURL(out.Body)

	h.logger.Info().
		Int("status", code).
		Str("class", out.Class.String()).
		Dur("elapsed", out.Elapsed).
		Bool("json", out.IsJSON()).
		Msg("direct response received")

	return out, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q must include scheme and host", ErrInvalidBaseURL, raw)
	}
	return nil
}

// reasonPhrase strips the code from a status line such as "201 Created".
func reasonPhrase(status string, code int) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}
