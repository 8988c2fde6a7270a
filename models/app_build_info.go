// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries immutable build-time metadata embedded into the
// ptp-tester binary by linker flags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the semantic version string of the build.
func (a AppBuildInfo) Version() string { return orNA(a.version) }

// Date returns the build timestamp string.
func (a AppBuildInfo) Date() string { return orNA(a.date) }

// Commit returns the source-control commit hash used for the build.
func (a AppBuildInfo) Commit() string { return orNA(a.commit) }

// String renders the build info on a single line.
func (a AppBuildInfo) String() string {
	return "version " + a.Version() + " (" + a.Commit() + ", " + a.Date() + ")"
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
