package conan

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 2 * time.Minute

// config holds internal runner configuration
type config struct {
	binary  string
	timeout time.Duration
}

// Option is a functional option for Runner configuration
type Option func(*config)

// WithBinary sets the conan executable
func WithBinary(binary string) Option {
	return func(c *config) {
		c.binary = binary
	}
}

// WithTimeout sets the timeout of a single conan invocation
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// Runner runs the conan CLI
type Runner struct {
	cfg config
}

// New creates a new conan runner
func New(opts ...Option) *Runner {
	cfg := config{
		binary:  "conan",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{cfg: cfg}
}

// List runs "conan list" for pattern on all remotes and returns stdout
// followed by stderr, as conan mixes both
func (r *Runner) List(ctx context.Context, pattern string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cfg.binary, "list", pattern, "-r=*", "--format=json")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "conan list failed",
			goerr.V("pattern", pattern),
			goerr.V("stderr", stderr.String()),
		)
	}

	return stdout.String() + stderr.String(), nil
}
