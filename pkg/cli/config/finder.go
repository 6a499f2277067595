package config

import "github.com/urfave/cli/v3"

// Finder output formats
const (
	FormatJSON          = "json"
	FormatGitHubActions = "github-actions"
	FormatGitHubSummary = "github-summary"
	FormatTable         = "table"
)

// Finder holds package search configuration
type Finder struct {
	SearchPattern string
	RawOutput     string
	Packages      string
	Primary       string
	JiraTicket    string
	Format        string
	Output        string
	SummaryOutput string
}

// Flags returns CLI flags for package search configuration
func (c *Finder) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search-pattern",
			Usage:       "Package search pattern, e.g. '*/*@ultimaker/cura_12824'",
			Destination: &c.SearchPattern,
		},
		&cli.StringFlag{
			Name:        "raw-output",
			Usage:       "Raw output of a package listing, used instead of searching",
			Destination: &c.RawOutput,
		},
		&cli.StringFlag{
			Name:        "packages",
			Usage:       "JSON array of package references, used instead of searching",
			Destination: &c.Packages,
		},
		&cli.StringFlag{
			Name:        "primary",
			Usage:       "Package reported separately from the overrides",
			Value:       "cura",
			Destination: &c.Primary,
			Sources:     cli.EnvVars("PKGCOORD_PRIMARY_PACKAGE"),
		},
		&cli.StringFlag{
			Name:        "jira-ticket",
			Usage:       "Ticket shown in the summary heading",
			Destination: &c.JiraTicket,
		},
		&cli.StringFlag{
			Name:        "output-format",
			Usage:       "Output format (json, github-actions, github-summary, table)",
			Value:       FormatJSON,
			Destination: &c.Format,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "File the result is appended to (default: stdout)",
			Destination: &c.Output,
		},
		&cli.StringFlag{
			Name:        "summary-output",
			Usage:       "File the Markdown summary is appended to with github-summary format",
			Destination: &c.SummaryOutput,
			Sources:     cli.EnvVars("PKGCOORD_SUMMARY_OUTPUT", "GITHUB_STEP_SUMMARY"),
		},
	}
}
