// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "connection refused"):
		return "Connection refused: the payment API is not reachable at this base URL (" + err.Error() + ")"
	case strings.Contains(s, "no such host"):
		return "Host not found: check the base URL (" + err.Error() + ")"
	case strings.Contains(s, "network is unreachable"):
		return "Network is unreachable (" + err.Error() + ")"
	case strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "client.timeout exceeded"):
		return "Request timed out (" + err.Error() + ")"
	}

	return err.Error()
}
