package store

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/ptp-tester/models"
)

type apmLocation struct {
	country string
	method  string
	name    string
}

// APMIndex is an ID-keyed view over a [models.APMCatalog].
type APMIndex struct {
	mu sync.RWMutex

	catalog models.APMCatalog
	byID    map[string]apmLocation
}

// NewAPMIndex indexes catalog. The index takes ownership of catalog.
func NewAPMIndex(catalog models.APMCatalog, gen IDGenerator) *APMIndex {
	if catalog == nil {
		catalog = models.APMCatalog{}
	}

	idx := &APMIndex{
		catalog: catalog,
		byID:    make(map[string]apmLocation),
	}

	for country, methods := range catalog {
		for method, profiles := range methods {
			for name := range profiles {
				idx.byID[gen.Generate()] = apmLocation{country: country, method: method, name: name}
			}
		}
	}

	return idx
}

// Catalog returns the underlying catalog as it should be written to disk.
func (x *APMIndex) Catalog() models.APMCatalog {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.catalog
}

// Len returns the number of APM profiles in the index.
func (x *APMIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.byID)
}

// Flatten lists every profile ordered by country, method and name.
func (x *APMIndex) Flatten() []models.APMEntry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entries := make([]models.APMEntry, 0, len(x.byID))
	for id, loc := range x.byID {
		entries = append(entries, x.entry(id, loc))
	}

	slices.SortFunc(entries, func(a, b models.APMEntry) int {
		return cmp.Or(
			cmp.Compare(a.Country, b.Country),
			cmp.Compare(a.Method, b.Method),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return entries
}

// Get returns the profile with the given ID.
func (x *APMIndex) Get(id string) (models.APMEntry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	loc, ok := x.byID[id]
	if !ok {
		return models.APMEntry{}, fmt.Errorf("%w: %s", ErrAPMNotFound, id)
	}
	return x.entry(id, loc), nil
}

// UpdatePayload replaces the payload of the profile with the given ID.
func (x *APMIndex) UpdatePayload(id string, payload models.Payload) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	loc, ok := x.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAPMNotFound, id)
	}

	profiles := x.catalog[loc.country][loc.method]
	profile := profiles[loc.name]
	profile.Payload = payload
	profiles[loc.name] = profile
	return nil
}

func (x *APMIndex) entry(id string, loc apmLocation) models.APMEntry {
	return models.APMEntry{
		ID:      id,
		Country: loc.country,
		Method:  loc.method,
		Name:    loc.name,
		Profile: x.catalog[loc.country][loc.method][loc.name],
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
