package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/internal/workers"
	"github.com/MKhiriev/ptp-tester/models"
)

type requestService struct {
	dispatcher *workers.Dispatcher

	logger *logger.Logger
}

// NewRequestService constructs a [RequestService] over dispatcher.
func NewRequestService(dispatcher *workers.Dispatcher, logger *logger.Logger) RequestService {
	return &requestService{
		dispatcher: dispatcher,
		logger:     logger.WithComponent("request-service"),
	}
}

func (s *requestService) Prepare(in models.RequestDraft) (models.DirectRequest, error) {
	if in.ProfileID == "" {
		if in.Mode == models.ModeAPM {
			return models.DirectRequest{}, ErrNoAPMSelected
		}
		return models.DirectRequest{}, ErrNoCardSelected
	}
	if strings.TrimSpace(in.PTP) == "" {
		return models.DirectRequest{}, ErrNoPTPSelected
	}
	if strings.TrimSpace(in.IntegrationKey) == "" {
		return models.DirectRequest{}, ErrNoIntegrationKey
	}
	if _, err := models.ParsePayload(in.PayloadText); err != nil {
		return models.DirectRequest{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if in.Outgoing == nil {
		return models.DirectRequest{}, ErrInvalidPayload
	}

	req := models.DirectRequest{
		BaseURL: strings.TrimSpace(in.BaseURL),
		PTP:     strings.TrimSpace(in.PTP),
		Body:    in.Outgoing.Clone(),
	}

	s.logger.Info().
		Str("url", req.URL()).
		Str("ptp", req.PTP).
		Str("profile", in.ProfileLabel).
		Str("country", in.Country).
		Str("mode", in.Mode.String()).
		Msg("request prepared")
	return req, nil
}

func (s *requestService) Curl(req models.DirectRequest, mode models.Mode, privacy bool) (string, string) {
	clipboard := payload.CurlCommand(req)
	if !privacy {
		return clipboard, clipboard
	}

	masked := req
	masked.Body = payload.Mask(mode, req.Body)
	return payload.CurlCommand(masked), clipboard
}

func (s *requestService) Send(ctx context.Context, req models.DirectRequest) (<-chan models.DirectOutcome, error) {
	return s.dispatcher.Dispatch(ctx, req)
}

func (s *requestService) Busy() bool {
	return s.dispatcher.Busy()
}
