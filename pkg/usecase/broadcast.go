package usecase

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/domain/interfaces"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

type broadcastUseCase struct {
	source     interfaces.ConfigSource
	namespaces Namespaces
}

// BroadcastOption is a functional option for the broadcast use case
type BroadcastOption func(*broadcastUseCase)

// WithNamespaces sets the fixed namespaces
func WithNamespaces(ns Namespaces) BroadcastOption {
	return func(uc *broadcastUseCase) {
		uc.namespaces = ns
	}
}

// NewBroadcast creates a new instance of BroadcastUseCase. source is only
// consulted when no version override is given.
func NewBroadcast(source interfaces.ConfigSource, opts ...BroadcastOption) interfaces.BroadcastUseCase {
	uc := &broadcastUseCase{
		source:     source,
		namespaces: DefaultNamespaces(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Resolve computes version, channel and coordinate of the package
func (uc *broadcastUseCase) Resolve(ctx context.Context, input *model.BroadcastInput) (*model.Resolution, error) {
	logger := ctxlog.From(ctx)

	name := strings.TrimSpace(input.PackageName)
	if name == "" {
		return nil, goerr.New("package name is required", goerr.T(ErrTagConfiguration))
	}

	var configured string
	if strings.TrimSpace(input.VersionOverride) == "" && uc.source != nil {
		v, err := uc.source.ReadVersion(ctx, input.WorkingDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read version from project descriptor",
				goerr.V("working_dir", input.WorkingDir))
		}
		configured = v
	}

	version, err := ResolveVersion(input.VersionOverride, configured, input.CommitSHA)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve version",
			goerr.V("package_name", name),
			goerr.V("working_dir", input.WorkingDir))
	}

	if _, err := semver.NewVersion(version.Base); err != nil {
		logger.Warn("Version is not a semantic version",
			"version", version.Base,
			"error", err,
		)
	}

	channel, rule := NewChannelResolver(uc.namespaces).Resolve(&ChannelInput{
		Release:     input.Release,
		Channel:     input.ChannelOverride,
		User:        input.UserOverride,
		UserChannel: input.UserChannelOverride,
	})

	coord := BuildCoordinate(name, version, channel)

	logger.Info("Resolved package coordinate",
		"package_name", name,
		"version", version.Full(),
		"channel", coord.Channel.Name,
		"user", coord.Channel.User,
		"rule", rule,
		"effective_ref", input.Release.EffectiveRef(),
	)

	return &model.Resolution{
		Coordinate: coord,
		IsRelease:  input.Release.IsRelease,
	}, nil
}

// Emit writes all variables and the summary of the resolution
func (uc *broadcastUseCase) Emit(ctx context.Context, res *model.Resolution, variables interfaces.VariableWriter, summary interfaces.SummaryWriter) error {
	if err := variables.WriteVariables(res.Variables()); err != nil {
		return goerr.Wrap(err, "failed to write version output")
	}

	if err := summary.WriteSummary(res.Coordinate.Name, SummaryFields(res)); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}

	ctxlog.From(ctx).Debug("Emitted resolution", "package_name", res.Coordinate.Name)

	return nil
}

// SummaryFields returns the fields shown in the summary report. The package
// name is the heading and empty fields are left out. Release builds omit the
// full (build-specific) fields.
func SummaryFields(res *model.Resolution) []model.Field {
	var fields []model.Field
	for _, f := range res.Fields() {
		if f.Key == model.KeyPackageName || f.Value == "" {
			continue
		}
		if res.IsRelease && f.IsFull() {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
