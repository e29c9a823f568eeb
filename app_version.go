package main

import (
	"runtime/debug"
)

// set with -ldflags "-X main.app_ver=..."
var app_ver string = ""

// app_version reports the version of the iatemplate binary: the module
// version when installed with go install, otherwise the ldflags value.
func app_version() string {
	if v, ok := debug.ReadBuildInfo(); ok && v.Main.Version != "" && v.Main.Version != "(devel)" {
		return v.Main.Version
	}
	if app_ver != "" {
		return app_ver
	}
	return "#UNAVAILABLE"
}
