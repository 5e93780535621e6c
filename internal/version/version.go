// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information of the utilities provided in
// this repository.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is the application version per the semantic versioning 2.0.0 spec
// (https://semver.org/).
//
// It is defined as a variable so it can be overridden during the build process
// with:
// '-ldflags "-X github.com/nasutil/nasutil/internal/version.Version=fullsemver"'
var Version = "0.1.0-pre"

// String returns the application version.  Builds without build metadata in
// Version carry the abbreviated commit they were built from when it is known.
func String() string {
	if strings.Contains(Version, "+") {
		return Version
	}
	if commit := vcsCommitID(debug.ReadBuildInfo()); commit != "" {
		return Version + "+" + commit
	}
	return Version
}

// vcsCommitID returns the abbreviated revision recorded in the build info.
func vcsCommitID(bi *debug.BuildInfo, ok bool) string {
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "" {
		return ""
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}
