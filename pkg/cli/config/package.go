package config

import "github.com/urfave/cli/v3"

// Package holds the package and version inputs of a resolution
type Package struct {
	Name       string
	Version    string
	SHA        string
	WorkingDir string
}

// Flags returns CLI flags for package configuration
func (c *Package) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "package-name",
			Aliases:     []string{"package_name"},
			Usage:       "Name of the package",
			Required:    true,
			Destination: &c.Name,
			Sources:     cli.EnvVars("PKGCOORD_PACKAGE_NAME"),
		},
		&cli.StringFlag{
			Name:        "version",
			Usage:       "Version override; the project descriptor is read when empty",
			Destination: &c.Version,
			Sources:     cli.EnvVars("PKGCOORD_VERSION"),
		},
		&cli.StringFlag{
			Name:        "sha",
			Usage:       "Commit hash used as build metadata",
			Destination: &c.SHA,
			Sources:     cli.EnvVars("PKGCOORD_SHA", "GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "working-dir",
			Usage:       "Directory holding the project descriptor",
			Value:       ".",
			Destination: &c.WorkingDir,
			Sources:     cli.EnvVars("PKGCOORD_WORKING_DIR"),
		},
	}
}
