// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/ptp-tester/models"
)

// CardIndex is an ID-keyed view over a [models.CardCatalog]. Every card gets
// a synthetic ID when the index is built; the IDs live only in memory.
//
// Country, brand and position of an entry are derived from where the card
// sits in the catalog, so they stay correct after deletions.
type CardIndex struct {
	mu sync.RWMutex

	catalog models.CardCatalog
	// ids mirrors catalog[country].DebitCard[brand] position by position.
	ids map[string]map[string][]string
	gen IDGenerator
}

// NewCardIndex indexes catalog. The index takes ownership of catalog.
func NewCardIndex(catalog models.CardCatalog, gen IDGenerator) *CardIndex {
	if catalog == nil {
		catalog = models.CardCatalog{}
	}

	idx := &CardIndex{
		catalog: catalog,
		ids:     make(map[string]map[string][]string, len(catalog)),
		gen:     gen,
	}

	for country, profile := range catalog {
		brands := make(map[string][]string, len(profile.DebitCard))
		for brand, cards := range profile.DebitCard {
			ids := make([]string, len(cards))
			for i := range cards {
				ids[i] = gen.Generate()
			}
			brands[brand] = ids
		}
		idx.ids[country] = brands
	}

	return idx
}

// Catalog returns the underlying catalog as it should be written to disk.
func (x *CardIndex) Catalog() models.CardCatalog {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.catalog
}

// Len returns the number of cards in the index.
func (x *CardIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := 0
	for _, brands := range x.ids {
		for _, ids := range brands {
			n += len(ids)
		}
	}
	return n
}

// Flatten lists every card ordered by country, brand and position.
func (x *CardIndex) Flatten() []models.CardEntry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entries := make([]models.CardEntry, 0)
	for _, country := range sortedKeys(x.ids) {
		brands := x.ids[country]
		for _, brand := range sortedKeys(brands) {
			cards := x.catalog[country].DebitCard[brand]
			for i, id := range brands[brand] {
				entries = append(entries, models.CardEntry{
					ID:      id,
					Country: country,
					Brand:   brand,
					Card:    cards[i],
				})
			}
		}
	}
	return entries
}

// Get returns the card with the given ID.
func (x *CardIndex) Get(id string) (models.CardEntry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	country, brand, i, ok := x.locate(id)
	if !ok {
		return models.CardEntry{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	return models.CardEntry{
		ID:      id,
		Country: country,
		Brand:   brand,
		Card:    x.catalog[country].DebitCard[brand][i],
	}, nil
}

// UpdateCard replaces the card with the given ID in place.
func (x *CardIndex) UpdateCard(id string, card models.CardProfile) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	country, brand, i, ok := x.locate(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	x.catalog[country].DebitCard[brand][i] = card
	return nil
}

// AddCard appends card to the brand list of the reference card and returns
// the new entry.
func (x *CardIndex) AddCard(refID string, card models.CardProfile) (models.CardEntry, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	country, brand, _, ok := x.locate(refID)
	if !ok {
		return models.CardEntry{}, fmt.Errorf("%w: %s", ErrCardNotFound, refID)
	}

	id := x.gen.Generate()
	debit := x.catalog[country].DebitCard
	debit[brand] = append(debit[brand], card)
	x.ids[country][brand] = append(x.ids[country][brand], id)

	return models.CardEntry{ID: id, Country: country, Brand: brand, Card: card}, nil
}

// DeleteCard removes the card with the given ID. A brand whose list becomes
// empty is removed from the catalog.
func (x *CardIndex) DeleteCard(id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	country, brand, i, ok := x.locate(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}

	debit := x.catalog[country].DebitCard
	debit[brand] = slices.Delete(debit[brand], i, i+1)
	x.ids[country][brand] = slices.Delete(x.ids[country][brand], i, i+1)

	if len(debit[brand]) == 0 {
		delete(debit, brand)
		delete(x.ids[country], brand)
	}
	return nil
}

// Customer returns the customer template of country.
func (x *CardIndex) Customer(country string) (models.CustomerTemplate, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	profile, ok := x.catalog[country]
	return profile.CustomerData, ok
}

func (x *CardIndex) locate(id string) (string, string, int, bool) {
	for country, brands := range x.ids {
		for brand, ids := range brands {
			if i := slices.Index(ids, id); i >= 0 {
				return country, brand, i, true
			}
		}
	}
	return "", "", 0, false
}
