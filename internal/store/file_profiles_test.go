// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/ptp-tester/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCards_SeedsMissingFile(t *testing.T) {
	repo, cfg := newTestRepository(t)

	catalog, err := repo.LoadCards(context.Background())
	require.NoError(t, err)

	assert.Len(t, catalog, 4)
	for _, country := range []string{"NG", "KE", "ZA", "EG"} {
		assert.Contains(t, catalog, country)
	}

	ng := catalog["NG"]
	require.Len(t, ng.DebitCard["visa"], 1)
	assert.NotEmpty(t, ng.DebitCard["visa"][0].CustomPayload)
	assert.Equal(t, json.Number("100"), ng.CustomerData.DefaultAmount)

	// KE carries an extra top-level key that must be preserved
	assert.Contains(t, catalog["KE"].Extra, "mobile_money")

	_, err = os.Stat(cfg.CardsPath)
	assert.NoError(t, err, "seed file must be written to disk")
}

func TestLoadCards_Malformed(t *testing.T) {
	repo, cfg := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CardsPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.CardsPath, []byte(`{"NG": [`), 0o644))

	_, err := repo.LoadCards(context.Background())
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestSaveCards_RoundTripKeepsExtraKeys(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	catalog, err := repo.LoadCards(ctx)
	require.NoError(t, err)

	ke := catalog["KE"]
	ke.DebitCard["visa"][0].Description = "KE - renamed"
	require.NoError(t, repo.SaveCards(ctx, catalog))

	reloaded, err := repo.LoadCards(ctx)
	require.NoError(t, err)

	assert.Equal(t, "KE - renamed", reloaded["KE"].DebitCard["visa"][0].Description)
	assert.JSONEq(t,
		`{"mpesa": {"phone_number": "254708663158", "description": "KE - MPESA Test Number"}}`,
		string(reloaded["KE"].Extra["mobile_money"]))
}

func TestSaveCards_TwoSpaceIndent(t *testing.T) {
	repo, cfg := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCards(ctx, models.CardCatalog{
		"XX": {CustomerData: models.CustomerTemplate{Name: "A"}},
	}))

	data, err := os.ReadFile(cfg.CardsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"XX\": {\n    ")
}

func TestLoadAPMs_SeedsNestedAndFlatVariants(t *testing.T) {
	repo, _ := newTestRepository(t)

	catalog, err := repo.LoadAPMs(context.Background())
	require.NoError(t, err)

	pix := catalog["BR"]["pix"]["default"]
	assert.NotNil(t, pix.Payload.Object("payment"))

	mpesa := catalog["KE"]["mpesa"]["default"]
	assert.Nil(t, mpesa.Payload.Object("payment"))
	assert.Equal(t, "75", mpesa.Payload.String("amount"))
}

func TestSaveAPMs(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	catalog, err := repo.LoadAPMs(ctx)
	require.NoError(t, err)

	profile := catalog["BR"]["pix"]["default"]
	profile.Payload["operation"] = "changed"
	catalog["BR"]["pix"]["default"] = profile
	require.NoError(t, repo.SaveAPMs(ctx, catalog))

	reloaded, err := repo.LoadAPMs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "changed", reloaded["BR"]["pix"]["default"].Payload.String("operation"))
}

func TestLoadPTPs(t *testing.T) {
	repo, cfg := newTestRepository(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.PTPPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.PTPPath, []byte("  ptp-b \n\n\tptp-a\n   \nptp-c"), 0o644))

	ptps, err := repo.LoadPTPs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ptp-b", "ptp-a", "ptp-c"}, ptps)
}

func TestLoadPTPs_MissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.LoadPTPs(context.Background())
	assert.ErrorIs(t, err, ErrPTPListNotFound)
}

func TestLoad_CancelledContext(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadCards(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
