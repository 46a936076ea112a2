// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/rs/zerolog"
)

// buildInfoUnknown replaces build values the linker left empty.
const buildInfoUnknown = "N/A"

// AppBuildInfo is the linker-injected version metadata of a binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo returns the build metadata with empty values replaced by
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the metadata as the banner printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (a AppBuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", a.Version).
		Str("date", a.Date).
		Str("commit", a.Commit)
}

func orUnknown(v string) string {
	if v == "" {
		return buildInfoUnknown
	}
	return v
}
