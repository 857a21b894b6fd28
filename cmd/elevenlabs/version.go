package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/AltairaLabs/elevenlabs-go/telemetry"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the CLI version: the ldflags value, else the module
// version recorded by go install, else "dev".
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GetVersionInfo renders the --version output, including the client library
// version stamped on telemetry and the Go toolchain.
func GetVersionInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "elevenlabs version %s", GetVersion())
	fmt.Fprintf(&b, "\nclient library: %s", telemetry.InstrumentationVersion)
	if gitCommit != "" {
		fmt.Fprintf(&b, "\ncommit: %s", gitCommit)
	}
	if buildDate != "" {
		fmt.Fprintf(&b, "\nbuilt: %s", buildDate)
	}
	fmt.Fprintf(&b, "\ngo: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
