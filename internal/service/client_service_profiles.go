// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/internal/store"
	"github.com/MKhiriev/ptp-tester/models"
)

type profileService struct {
	repo store.ProfileRepository
	ids  store.IDGenerator

	mu    sync.RWMutex
	cards *store.CardIndex
	apms  *store.APMIndex
	ptps  []string

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService] over repo. ids assigns the
// synthetic catalog IDs.
func NewProfileService(repo store.ProfileRepository, ids store.IDGenerator, logger *logger.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		ids:    ids,
		cards:  store.NewCardIndex(nil, ids),
		apms:   store.NewAPMIndex(nil, ids),
		logger: logger.WithComponent("profile-service"),
	}
}

func (s *profileService) Load(ctx context.Context) error {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return fmt.Errorf("error loading cards: %w", err)
	}
	apms, err := s.repo.LoadAPMs(ctx)
	if err != nil {
		return fmt.Errorf("error loading apm profiles: %w", err)
	}
	ptps, err := s.repo.LoadPTPs(ctx)
	if err != nil {
		return fmt.Errorf("error loading ptp list: %w", err)
	}

	s.mu.Lock()
	s.cards = store.NewCardIndex(cards, s.ids)
	s.apms = store.NewAPMIndex(apms, s.ids)
	s.ptps = ptps
	s.mu.Unlock()

	s.logger.Info().
		Int("cards", s.cards.Len()).
		Int("apms", s.apms.Len()).
		Int("ptps", len(ptps)).
		Msg("profiles loaded")
	return nil
}

func (s *profileService) ReloadCards(ctx context.Context) error {
	cards, err := s.repo.LoadCards(ctx)
	if err != nil {
		return fmt.Errorf("error reloading cards: %w", err)
	}

	s.mu.Lock()
	s.cards = store.NewCardIndex(cards, s.ids)
	s.mu.Unlock()

	s.logger.Info().Int("cards", s.cards.Len()).Msg("cards reloaded")
	return nil
}

func (s *profileService) Cards() []models.CardEntry {
	return s.cardIndex().Flatten()
}

func (s *profileService) Card(id string) (models.CardEntry, error) {
	if id == "" {
		return models.CardEntry{}, ErrNoCardSelected
	}
	return s.cardIndex().Get(id)
}

func (s *profileService) Customer(country string) models.CustomerTemplate {
	customer, _ := s.cardIndex().Customer(country)
	return customer
}

func (s *profileService) APMs() []models.APMEntry {
	return s.apmIndex().Flatten()
}

func (s *profileService) APM(id string) (models.APMEntry, error) {
	if id == "" {
		return models.APMEntry{}, ErrNoAPMSelected
	}
	return s.apmIndex().Get(id)
}

func (s *profileService) PTPs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ptps)
}

func (s *profileService) FilterPTPs(query, current string) ([]string, string) {
	all := s.PTPs()

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := all
	if query != "" {
		filtered = make([]string, 0, len(all))
		for _, ptp := range all {
			if strings.Contains(strings.ToLower(ptp), query) {
				filtered = append(filtered, ptp)
			}
		}
	}

	switch {
	case slices.Contains(filtered, current):
		return filtered, current
	case len(filtered) > 0:
		return filtered, filtered[0]
	default:
		return filtered, ""
	}
}

func (s *profileService) SaveExistingCard(ctx context.Context, id string, fields models.CardFields, mode models.Mode, p models.Payload) (models.CardEntry, error) {
	idx := s.cardIndex()

	entry, err := s.Card(id)
	if err != nil {
		return models.CardEntry{}, err
	}

	card := entry.Card.WithFields(trimFields(fields))
	if p != nil {
		card.SetCustomPayload(mode, withoutIntegrationKey(p))
	}

	if err := idx.UpdateCard(id, card); err != nil {
		return models.CardEntry{}, err
	}
	if err := s.repo.SaveCards(ctx, idx.Catalog()); err != nil {
		return models.CardEntry{}, fmt.Errorf("error saving card: %w", err)
	}

	s.logger.Info().Str("country", entry.Country).Str("brand", entry.Brand).Msg("card updated")
	entry.Card = card
	return entry, nil
}

func (s *profileService) SaveNewCard(ctx context.Context, refID, description string, fields models.CardFields, mode models.Mode, p models.Payload) (models.CardEntry, error) {
	if refID == "" {
		return models.CardEntry{}, ErrNoCardSelected
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.CardEntry{}, ErrDescriptionRequired
	}

	card := models.CardProfile{Description: description}.WithFields(trimFields(fields))
	if p != nil {
		card.SetCustomPayload(mode, withoutIntegrationKey(p))
	}

	idx := s.cardIndex()
	entry, err := idx.AddCard(refID, card)
	if err != nil {
		return models.CardEntry{}, err
	}
	if err := s.repo.SaveCards(ctx, idx.Catalog()); err != nil {
		return models.CardEntry{}, fmt.Errorf("error saving new card: %w", err)
	}

	s.logger.Info().Str("country", entry.Country).Str("brand", entry.Brand).Msg("card added")
	return entry, nil
}

func (s *profileService) DeleteCard(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoCardSelected
	}

	idx := s.cardIndex()
	if err := idx.DeleteCard(id); err != nil {
		return err
	}
	if err := s.repo.SaveCards(ctx, idx.Catalog()); err != nil {
		return fmt.Errorf("error saving cards after delete: %w", err)
	}

	s.logger.Info().Msg("card deleted")
	return nil
}

func (s *profileService) SaveAPMPayload(ctx context.Context, id string, p models.Payload) (models.APMEntry, error) {
	if id == "" {
		return models.APMEntry{}, ErrNoAPMSelected
	}
	if p == nil {
		return models.APMEntry{}, ErrInvalidPayload
	}

	idx := s.apmIndex()
	if err := idx.UpdatePayload(id, withoutIntegrationKey(p)); err != nil {
		return models.APMEntry{}, err
	}
	if err := s.repo.SaveAPMs(ctx, idx.Catalog()); err != nil {
		return models.APMEntry{}, fmt.Errorf("error saving apm profile: %w", err)
	}

	return idx.Get(id)
}

func (s *profileService) cardIndex() *store.CardIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards
}

func (s *profileService) apmIndex() *store.APMIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apms
}

// withoutIntegrationKey returns a copy of p without the key. Saved payloads
// never carry a key: it always comes from the live field.
func withoutIntegrationKey(p models.Payload) models.Payload {
	out := p.Clone()
	delete(out, payload.KeyIntegrationKey)
	return out
}

func trimFields(f models.CardFields) models.CardFields {
	return models.CardFields{
		Number:  strings.TrimSpace(f.Number),
		Name:    strings.TrimSpace(f.Name),
		DueDate: strings.TrimSpace(f.DueDate),
		CVV:     strings.TrimSpace(f.CVV),
	}
}
