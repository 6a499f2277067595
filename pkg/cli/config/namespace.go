package config

import (
	"github.com/m-mizutani/pkgcoord/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Namespace holds channel and user overrides and the fixed namespaces
type Namespace struct {
	Channel     string
	User        string
	UserChannel string

	DefaultUser     string
	InternalUser    string
	InternalChannel string
}

// Flags returns CLI flags for namespace configuration
func (c *Namespace) Flags() []cli.Flag {
	defaults := usecase.DefaultNamespaces()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Channel override",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("PKGCOORD_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "user",
			Usage:       "User (namespace) override",
			Destination: &c.User,
			Sources:     cli.EnvVars("PKGCOORD_USER"),
		},
		&cli.StringFlag{
			Name:        "user-channel",
			Aliases:     []string{"user_channel"},
			Usage:       "Combined user/channel override; wins over --channel and --user",
			Destination: &c.UserChannel,
			Sources:     cli.EnvVars("PKGCOORD_USER_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "default-user",
			Usage:       "User of development builds",
			Value:       defaults.Default,
			Destination: &c.DefaultUser,
			Sources:     cli.EnvVars("PKGCOORD_DEFAULT_USER"),
		},
		&cli.StringFlag{
			Name:        "internal-user",
			Usage:       "User of internal builds",
			Value:       defaults.Internal,
			Destination: &c.InternalUser,
			Sources:     cli.EnvVars("PKGCOORD_INTERNAL_USER"),
		},
		&cli.StringFlag{
			Name:        "internal-channel",
			Usage:       "Channel of internal release builds",
			Value:       defaults.InternalChannel,
			Destination: &c.InternalChannel,
			Sources:     cli.EnvVars("PKGCOORD_INTERNAL_CHANNEL"),
		},
	}
}

// Namespaces returns the configured fixed namespaces
func (c *Namespace) Namespaces() usecase.Namespaces {
	return usecase.Namespaces{
		Default:         c.DefaultUser,
		Internal:        c.InternalUser,
		InternalChannel: c.InternalChannel,
	}
}
