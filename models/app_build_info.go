// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo is the linker-injected build metadata of a binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// BuildInfoField is one labelled line of [AppBuildInfo.Fields].
type BuildInfoField struct {
	Label string
	Value string
}

// NewAppBuildInfo trims the values and replaces empty ones with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Fields returns the metadata in display order.
func (a AppBuildInfo) Fields() []BuildInfoField {
	return []BuildInfoField{
		{Label: "Version", Value: orNotAvailable(a.Version)},
		{Label: "Build date", Value: orNotAvailable(a.Date)},
		{Label: "Commit", Value: orNotAvailable(a.Commit)},
	}
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
