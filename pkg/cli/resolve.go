package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/cli/config"
	"github.com/m-mizutani/pkgcoord/pkg/domain/interfaces"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
	"github.com/m-mizutani/pkgcoord/pkg/infra/descriptor"
	"github.com/m-mizutani/pkgcoord/pkg/infra/ghaction"
	"github.com/m-mizutani/pkgcoord/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var (
		pkgCfg    config.Package
		ciCfg     config.CI
		nsCfg     config.Namespace
		outputCfg config.Output
	)

	flags := append(pkgCfg.Flags(), ciCfg.Flags()...)
	flags = append(flags, nsCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve version, channel and references of a package",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			broadcastUC := usecase.NewBroadcast(
				descriptor.New(),
				usecase.WithNamespaces(nsCfg.Namespaces()),
			)

			res, err := broadcastUC.Resolve(ctx, &model.BroadcastInput{
				PackageName:         pkgCfg.Name,
				WorkingDir:          pkgCfg.WorkingDir,
				VersionOverride:     pkgCfg.Version,
				CommitSHA:           pkgCfg.SHA,
				Release:             ciCfg.ReleaseContext(),
				ChannelOverride:     nsCfg.Channel,
				UserOverride:        nsCfg.User,
				UserChannelOverride: nsCfg.UserChannel,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to resolve package coordinate")
			}

			// Outputs are opened only after a successful resolution
			if err := emit(ctx, broadcastUC, res, outputCfg); err != nil {
				return err
			}

			_, _ = color.New(color.FgGreen, color.Bold).Fprintln(os.Stderr, res.Coordinate.Full())
			return nil
		},
	}
}

func emit(ctx context.Context, uc interfaces.BroadcastUseCase, res *model.Resolution, cfg config.Output) (err error) {
	variables, err := ghaction.Open(cfg.VersionOutput)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := variables.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	summary, err := ghaction.Open(cfg.SummaryOutput)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := summary.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := uc.Emit(ctx, res, variables, summary); err != nil {
		return goerr.Wrap(err, "failed to emit resolution")
	}

	return nil
}
