package interfaces

import "context"

// ConanRunner runs package-manager queries against the configured remotes
type ConanRunner interface {
	// List returns the raw output of a package listing for the given pattern
	List(ctx context.Context, pattern string) (string, error)
}
