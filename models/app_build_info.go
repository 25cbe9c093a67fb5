// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries
// through linker flags (-X main.buildVersion=...).
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the semantic version string of the build.
func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

// Date returns the build timestamp string.
func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

// Commit returns the source-control commit hash used for the build.
func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

// String renders the three values on separate lines, the way both binaries
// print them at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version(), a.Date(), a.Commit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
