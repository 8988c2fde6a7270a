package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeTransportError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{name: "nil", err: nil, prefix: ""},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), prefix: "Connection refused"},
		{name: "dns", err: errors.New("dial tcp: lookup nope.invalid: no such host"), prefix: "Host not found"},
		{name: "unreachable", err: errors.New("connect: network is unreachable"), prefix: "Network is unreachable"},
		{name: "client timeout", err: errors.New("Post \"x\": context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), prefix: "Request timed out"},
		{name: "io timeout", err: errors.New("read tcp: i/o timeout"), prefix: "Request timed out"},
		{name: "other", err: errors.New("tls: handshake failure"), prefix: "tls: handshake failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := humanizeTransportError(tt.err)
			assert.True(t, strings.HasPrefix(got, tt.prefix), got)
		})
	}
}
