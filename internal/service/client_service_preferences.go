package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ptp-tester/internal/store"
	"github.com/MKhiriev/ptp-tester/models"
)

type preferencesService struct {
	repo           store.PreferencesRepository
	defaultBaseURL string
}

// NewPreferencesService constructs a [PreferencesService]. Loaded
// preferences without a base URL get defaultBaseURL.
func NewPreferencesService(repo store.PreferencesRepository, defaultBaseURL string) PreferencesService {
	return &preferencesService{repo: repo, defaultBaseURL: defaultBaseURL}
}

func (s *preferencesService) Load(ctx context.Context) models.Preferences {
	prefs := s.repo.Load(ctx)
	if prefs.BaseURL == "" {
		prefs.BaseURL = s.defaultBaseURL
	}
	return prefs
}

func (s *preferencesService) Save(ctx context.Context, prefs models.Preferences) error {
	if err := s.repo.Save(ctx, prefs); err != nil {
		return fmt.Errorf("error saving preferences: %w", err)
	}
	return nil
}
