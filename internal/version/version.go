package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the dirtree CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colorize renders v with its major, minor and patch parts in distinct
// colors. Anything after the patch number (pre-release, build) stays plain.
// When enabled is false, or v is not dotted, v is returned unchanged.
func Colorize(v string, enabled bool) string {
	if !enabled {
		return v
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	major := color.New(color.FgYellow, color.Bold)
	minor := color.New(color.FgGreen, color.Bold)
	patchC := color.New(color.FgBlue, color.Bold)
	for _, c := range []*color.Color{major, minor, patchC} {
		c.EnableColor()
	}
	return major.Sprint(parts[0]) + "." + minor.Sprint(parts[1]) + "." + patchC.Sprint(patch) + rest
}
