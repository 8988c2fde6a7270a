package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/ptp-tester/internal/config"
	"github.com/MKhiriev/ptp-tester/internal/logger"
)

// seqIDs hands out predictable IDs: id-1, id-2, ...
type seqIDs struct {
	n int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestRepository(t *testing.T) (ProfileRepository, config.ClientStorage) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.ClientStorage{
		CardsPath:       filepath.Join(dir, "data", "test-cards.json"),
		APMPath:         filepath.Join(dir, "data", "apm-profiles.json"),
		PTPPath:         filepath.Join(dir, "data", "ptp-list.txt"),
		PreferencesPath: filepath.Join(dir, "home", ".ebanx_ptp_tester", "config.json"),
	}
	return NewFileProfileRepository(cfg, logger.Nop()), cfg
}
