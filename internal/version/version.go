// Package version holds build information of the fsd tool.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with major, minor and patch in their own colors.
func Colored(enabled bool) string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	colors := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	for i, c := range colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(parts[i])
	}
	return strings.Join(parts, ".")
}

// Info is the full version line: version, then commit and date when known.
func Info(enabled bool) string {
	var b strings.Builder
	b.WriteString("fsd ")
	b.WriteString(Colored(enabled))
	if GitCommit != "" {
		b.WriteString(" (" + GitCommit)
		if BuildDate != "" {
			b.WriteString(", " + BuildDate)
		}
		b.WriteString(")")
	} else if BuildDate != "" {
		b.WriteString(" (" + BuildDate + ")")
	}
	return b.String()
}
