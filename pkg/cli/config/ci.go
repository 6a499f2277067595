package config

import (
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// CI holds the CI event context
type CI struct {
	EventName string
	RefName   string
	HeadRef   string
	Release   bool
	Internal  bool
}

// Flags returns CLI flags for CI context configuration
func (c *CI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-name",
			Aliases:     []string{"event_name"},
			Usage:       "CI event name",
			Destination: &c.EventName,
			Sources:     cli.EnvVars("PKGCOORD_EVENT_NAME", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "ref-name",
			Aliases:     []string{"ref_name"},
			Usage:       "Branch or tag name of the build",
			Destination: &c.RefName,
			Sources:     cli.EnvVars("PKGCOORD_REF_NAME", "GITHUB_REF_NAME"),
		},
		&cli.StringFlag{
			Name:        "head-ref",
			Aliases:     []string{"head_ref"},
			Usage:       "Source branch of a pull request",
			Destination: &c.HeadRef,
			Sources:     cli.EnvVars("PKGCOORD_HEAD_REF", "GITHUB_HEAD_REF"),
		},
		&cli.BoolFlag{
			Name:        "release",
			Usage:       "Production release build",
			Destination: &c.Release,
			Sources:     cli.EnvVars("PKGCOORD_RELEASE"),
		},
		&cli.BoolFlag{
			Name:        "internal",
			Usage:       "Internal build published to the internal namespace",
			Destination: &c.Internal,
			Sources:     cli.EnvVars("PKGCOORD_INTERNAL"),
		},
	}
}

// ReleaseContext returns the configured CI context
func (c *CI) ReleaseContext() model.ReleaseContext {
	return model.ReleaseContext{
		EventName:  c.EventName,
		RefName:    c.RefName,
		HeadRef:    c.HeadRef,
		IsRelease:  c.Release,
		IsInternal: c.Internal,
	}
}
