package interfaces

import "context"

// ConfigSource reads the version declared by a project descriptor
type ConfigSource interface {
	// ReadVersion returns the declared version of the project in dir
	ReadVersion(ctx context.Context, dir string) (string, error)
}
