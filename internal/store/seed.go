package store

import _ "embed"

// Fixtures written on first start so a fresh checkout has something to send.
var (
	//go:embed seed/test-cards.json
	seedCards []byte

	//go:embed seed/apm-profiles.json
	seedAPMs []byte
)
