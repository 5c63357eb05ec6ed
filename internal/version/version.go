package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the fire CLI.
// These variables can be overridden at build time via -ldflags.

const (
	major = "0"
	minor = "3"
	patch = "0"
	pre   = "dev"
)

var (
	versionMajorColor = color.New(color.FgRed, color.Bold)
	versionMinorColor = color.New(color.FgYellow, color.Bold)
	versionPatchColor = color.New(color.FgHiYellow, color.Bold)

	// Version is the semantic version of the compiler.
	Version = major + "." + minor + "." + patch + "-" + pre

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with colored components when it still has the default value.
func Colored() string {
	if Version != major+"."+minor+"."+patch+"-"+pre {
		return Version
	}
	return versionMajorColor.Sprint(major) + "." + versionMinorColor.Sprint(minor) + "." + versionPatchColor.Sprint(patch) + "-" + pre
}

// Info is the multi-line text printed by `fire version`.
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fire %s\n", Colored())
	if GitCommit != "" {
		fmt.Fprintf(&b, "commit: %s\n", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, "built:  %s\n", BuildDate)
	}
	return b.String()
}
