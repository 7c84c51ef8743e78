// Copyright 2024 Tamás Gulácsi .All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package version tells the version of the running binary, from its build info.
package version

import (
	"log/slog"
	"runtime/debug"
)

// Main returns the module path and version of the main module of the running binary,
// or the empty string if it was built without module support.
func Main() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return ""
	}
	return FromBuildInfo(info)
}

// FromBuildInfo returns path@version for released versions,
// path@revision for clean development builds,
// and path@revision-time for builds from a modified working tree.
func FromBuildInfo(info *debug.BuildInfo) string {
	var vcsRev, vcsTime, vcsModified string
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			vcsRev = kv.Value
		case "vcs.time":
			vcsTime = kv.Value
		case "vcs.modified":
			vcsModified = kv.Value
		}
	}
	if vcsRev == "" && vcsTime == "" && vcsModified == "" {
		slog.Debug("version.FromBuildInfo no vcs info", "path", info.Path, "version", info.Main.Version)
		return info.Path + "@" + info.Main.Version
	}
	if vcsModified == "false" {
		if info.Main.Version != "(devel)" || vcsRev == "" {
			return info.Path + "@" + info.Main.Version
		}
		return info.Path + "@" + vcsRev
	}
	return info.Path + "@" + vcsRev + "-" + vcsTime
}
