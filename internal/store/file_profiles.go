// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
	"github.com/MKhiriev/ptp-tester/models"
)

// fileProfileRepository is the flat-file implementation of
// [ProfileRepository]. Each catalog is one JSON document rewritten in full on
// every save.
type fileProfileRepository struct {
	cardsPath string
	apmPath   string
	ptpPath   string

	logger *logger.Logger
}

// NewFileProfileRepository constructs a [ProfileRepository] over the files
// named in cfg.
func NewFileProfileRepository(cfg config.ClientStorage, logger *logger.Logger) ProfileRepository {
	return &fileProfileRepository{
		cardsPath: cfg.CardsPath,
		apmPath:   cfg.APMPath,
		ptpPath:   cfg.PTPPath,
		logger:    logger.WithComponent("profile-repository"),
	}
}

// LoadCards reads the card catalog. When the file does not exist yet it is
// created from the built-in fixture and the fixture is returned.
func (r *fileProfileRepository) LoadCards(ctx context.Context) (models.CardCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var catalog models.CardCatalog
	if err := r.loadOrSeed(r.cardsPath, seedCards, &catalog); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = models.CardCatalog{}
	}

	r.logger.Info().Int("countries", len(catalog)).Str("path", r.cardsPath).Msg("card catalog loaded")
	return catalog, nil
}

// SaveCards overwrites the card catalog file.
func (r *fileProfileRepository) SaveCards(ctx context.Context, catalog models.CardCatalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeJSON(r.cardsPath, catalog); err != nil {
		r.logger.Err(err).Str("path", r.cardsPath).Msg("saving card catalog failed")
		return err
	}
	return nil
}

// LoadAPMs reads the APM catalog, seeding it like [LoadCards] when absent.
func (r *fileProfileRepository) LoadAPMs(ctx context.Context) (models.APMCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var catalog models.APMCatalog
	if err := r.loadOrSeed(r.apmPath, seedAPMs, &catalog); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = models.APMCatalog{}
	}

	r.logger.Info().Int("countries", len(catalog)).Str("path", r.apmPath).Msg("apm catalog loaded")
	return catalog, nil
}

// SaveAPMs overwrites the APM catalog file.
func (r *fileProfileRepository) SaveAPMs(ctx context.Context, catalog models.APMCatalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeJSON(r.apmPath, catalog); err != nil {
		r.logger.Err(err).Str("path", r.apmPath).Msg("saving apm catalog failed")
		return err
	}
	return nil
}

// LoadPTPs reads the newline-delimited PTP list. Lines are trimmed and blank
// lines dropped; order is kept. A missing file is an error.
func (r *fileProfileRepository) LoadPTPs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.ptpPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPTPListNotFound, r.ptpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading ptp list %s: %w", r.ptpPath, err)
	}

	ptps := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ptps = append(ptps, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ptp list %s: %w", r.ptpPath, err)
	}

	r.logger.Info().Int("profiles", len(ptps)).Str("path", r.ptpPath).Msg("ptp list loaded")
	return ptps, nil
}

func (r *fileProfileRepository) loadOrSeed(path string, seed []byte, v any) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Warn().Str("path", path).Msg("file not found, writing seed data")
		if err := writeFile(path, seed); err != nil {
			return err
		}
		data = seed
	case err != nil:
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := decodeJSON(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedCatalog, path, err)
	}
	return nil
}
