// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the version metadata stamped into a binary at link
// time. The client shows it in the build-info overlay; empty fields mean
// a local build without ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo wraps raw ldflags values into [AppBuildInfo].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version, usually a git tag.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the timestamp of the build.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the short hash of the commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
