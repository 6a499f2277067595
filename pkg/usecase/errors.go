package usecase

import "github.com/m-mizutani/goerr/v2"

// ErrTagConfiguration marks errors caused by missing or invalid required
// configuration. They are fatal: no package coordinate can be produced.
var ErrTagConfiguration = goerr.NewTag("configuration")

// IsConfigurationError reports whether err carries ErrTagConfiguration
func IsConfigurationError(err error) bool {
	return goerr.HasTag(err, ErrTagConfiguration)
}
