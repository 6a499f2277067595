package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/cli/config"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
	"github.com/m-mizutani/pkgcoord/pkg/infra/conan"
	"github.com/m-mizutani/pkgcoord/pkg/infra/ghaction"
	"github.com/m-mizutani/pkgcoord/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFind() *cli.Command {
	var finderCfg config.Finder

	return &cli.Command{
		Name:    "find",
		Aliases: []string{"f"},
		Usage:   "Find published packages and select the highest version of each",
		Flags:   finderCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			switch finderCfg.Format {
			case config.FormatJSON, config.FormatGitHubActions, config.FormatGitHubSummary, config.FormatTable:
			default:
				return goerr.New("unsupported output format", goerr.V("format", finderCfg.Format))
			}

			query := &model.FinderQuery{
				SearchPattern: finderCfg.SearchPattern,
				RawOutput:     finderCfg.RawOutput,
				Primary:       finderCfg.Primary,
			}
			if finderCfg.Packages != "" {
				if err := json.Unmarshal([]byte(finderCfg.Packages), &query.Packages); err != nil {
					return goerr.Wrap(err, "packages must be a JSON array of references")
				}
				if query.Packages == nil {
					query.Packages = []string{}
				}
			}

			finderUC := usecase.NewFinder(conan.New())
			listing, err := finderUC.Find(ctx, query)
			if err != nil {
				return goerr.Wrap(err, "failed to find packages")
			}

			out, err := ghaction.Open(finderCfg.Output)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := out.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()

			switch finderCfg.Format {
			case config.FormatGitHubActions:
				return out.WriteVariables(listingVariables(listing))

			case config.FormatTable:
				renderListingTable(out, listing)
				return nil

			case config.FormatGitHubSummary:
				if err := writeListingSummary(ctx, finderCfg, listing); err != nil {
					return err
				}
				return writeJSON(out, listingOutputs(listing))

			default:
				return writeJSON(out, listing)
			}
		},
	}
}

// primaryPackageKey is the output name of the primary package reference read
// by existing release workflows
const primaryPackageKey = "cura_package"

func listingVariables(listing *model.PackageListing) []model.Field {
	return []model.Field{
		{Key: "discovered_packages", Value: strings.Join(listing.Deduplicated, " ")},
		{Key: primaryPackageKey, Value: listing.Primary},
		{Key: "package_overrides", Value: strings.Join(listing.Overrides, " ")},
		{Key: "original_count", Value: strconv.Itoa(listing.OriginalCount)},
		{Key: "deduplicated_count", Value: strconv.Itoa(listing.DeduplicatedCount)},
	}
}

func listingOutputs(listing *model.PackageListing) map[string]string {
	return map[string]string{
		"discovered_packages": strings.Join(listing.Deduplicated, " "),
		primaryPackageKey:     listing.Primary,
		"package_overrides":   strings.Join(listing.Overrides, " "),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}

func renderListingTable(w io.Writer, listing *model.PackageListing) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Package", "Version", "Reference", "Role"})

	for _, ref := range listing.Deduplicated {
		name, version, _ := usecase.ParseReference(ref)
		role := "override"
		if ref == listing.Primary {
			role = "primary"
		}
		t.AppendRow(table.Row{name, version, ref, role})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}

// writeListingSummary appends the Markdown report of a listing to the
// summary output. Without a summary output nothing is written.
func writeListingSummary(ctx context.Context, cfg config.Finder, listing *model.PackageListing) (err error) {
	if cfg.SummaryOutput == "" {
		ctxlog.From(ctx).Debug("No summary output configured, skipping summary")
		return nil
	}

	ticket := cfg.JiraTicket
	if ticket == "" {
		ticket = "Unknown"
	}
	pattern := cfg.SearchPattern
	if pattern == "" {
		pattern = "N/A"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Packages Found for Jira Ticket: %s\n\n", ticket))
	sb.WriteString(fmt.Sprintf("The workflow searched for packages matching the pattern `%s` across all configured remotes.\n\n", pattern))
	sb.WriteString("## Discovered Packages:\n\n")

	if len(listing.Deduplicated) == 0 {
		sb.WriteString("*No packages found matching the specified tag.*\n")
	} else {
		for _, ref := range listing.Deduplicated {
			sb.WriteString(fmt.Sprintf("- %s\n", ref))
		}

		if listing.OriginalCount > listing.DeduplicatedCount {
			sb.WriteString("\n### Package Version Selection:\n\n")
			sb.WriteString(fmt.Sprintf("Found %d total packages, selected %d packages after choosing the highest semantic version for each repository.\n\n",
				listing.OriginalCount, listing.DeduplicatedCount))
			sb.WriteString("#### All Discovered Packages (before deduplication):\n\n")
			for _, ref := range listing.Discovered {
				sb.WriteString(fmt.Sprintf("- %s\n", ref))
			}
		}
	}
	sb.WriteString("\n---\n")

	summary, err := ghaction.Open(cfg.SummaryOutput)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := summary.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.WriteString(summary, sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write summary")
	}
	return nil
}
