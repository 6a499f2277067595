package config

import "github.com/urfave/cli/v3"

// Output holds the destinations of step outputs and summaries
type Output struct {
	VersionOutput string
	SummaryOutput string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "version-output",
			Usage:       "File the key=value variables are appended to (default: stdout)",
			Destination: &c.VersionOutput,
			Sources:     cli.EnvVars("PKGCOORD_VERSION_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "summary-output",
			Usage:       "File the Markdown summary is appended to (default: stdout)",
			Destination: &c.SummaryOutput,
			Sources:     cli.EnvVars("PKGCOORD_SUMMARY_OUTPUT"),
		},
	}
}
