package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/domain/interfaces"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

type finderUseCase struct {
	runner interfaces.ConanRunner
}

// NewFinder creates a new instance of FinderUseCase. runner may be nil when
// searching remotes is not needed.
func NewFinder(runner interfaces.ConanRunner) interfaces.FinderUseCase {
	return &finderUseCase{
		runner: runner,
	}
}

// Find lists packages from the query source, keeps the highest version of
// each package and separates the primary package from the overrides
func (uc *finderUseCase) Find(ctx context.Context, query *model.FinderQuery) (*model.PackageListing, error) {
	logger := ctxlog.From(ctx)
	var discovered []string

	switch {
	case query.SearchPattern != "":
		if uc.runner == nil {
			return nil, goerr.New("no package runner configured for search")
		}

		logger.Info("Searching for packages", "pattern", query.SearchPattern)
		raw, err := uc.runner.List(ctx, query.SearchPattern)
		if err != nil {
			logger.Warn("Package search failed", "error", err, "pattern", query.SearchPattern)
			raw = ""
		}
		discovered = parseRefs(logger, raw)

	case query.RawOutput != "":
		discovered = parseRefs(logger, query.RawOutput)

	case query.Packages != nil:
		discovered = query.Packages

	default:
		return nil, goerr.New("one of search pattern, raw output or packages is required")
	}

	deduplicated, selections := deduplicate(logger, discovered)
	primary, overrides := CategorizePackages(deduplicated, query.Primary)

	return &model.PackageListing{
		Discovered:        nonNil(discovered),
		Deduplicated:      nonNil(deduplicated),
		Primary:           primary,
		Overrides:         nonNil(overrides),
		VersionSelections: selections,
		OriginalCount:     len(discovered),
		DeduplicatedCount: len(deduplicated),
	}, nil
}

func parseRefs(logger *slog.Logger, raw string) []string {
	refs, err := ParseListOutput(raw)
	if err != nil {
		logger.Warn("Failed to parse package list output", "error", err)
		return nil
	}
	return refs
}

// ParseListOutput extracts package references from the JSON document
// embedded in raw list output. References carrying build metadata ("+") are
// dropped. Remotes and references are returned in sorted order.
func ParseListOutput(raw string) ([]string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, nil
	}

	var remotes map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &remotes); err != nil {
		return nil, goerr.Wrap(err, "failed to decode package list JSON")
	}

	remoteNames := make([]string, 0, len(remotes))
	for name := range remotes {
		remoteNames = append(remoteNames, name)
	}
	sort.Strings(remoteNames)

	var refs []string
	for _, name := range remoteNames {
		// Remotes that failed report an error object instead of references
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(remotes[name], &entries); err != nil {
			continue
		}

		keys := make([]string, 0, len(entries))
		for ref := range entries {
			if strings.Contains(ref, "/") && !strings.Contains(ref, "+") {
				keys = append(keys, ref)
			}
		}
		sort.Strings(keys)
		refs = append(refs, keys...)
	}

	return refs, nil
}

// ParseReference splits "name/version[@user/channel]" into name and version
func ParseReference(ref string) (string, string, bool) {
	name, rest, found := strings.Cut(ref, "/")
	if !found || name == "" {
		return "", "", false
	}
	version, _, _ := strings.Cut(rest, "@")
	version, _, _ = strings.Cut(version, "/")
	return name, version, true
}

func deduplicate(logger *slog.Logger, refs []string) ([]string, map[string][]string) {
	type candidate struct {
		ref     string
		version string
	}

	var order []string
	groups := map[string][]candidate{}
	selections := map[string][]string{}

	for _, ref := range refs {
		name, version, ok := ParseReference(ref)
		if !ok {
			continue
		}
		if _, exists := groups[name]; !exists {
			order = append(order, name)
		}
		groups[name] = append(groups[name], candidate{ref: ref, version: version})
		selections[name] = append(selections[name], version)
	}

	deduplicated := make([]string, 0, len(order))
	for _, name := range order {
		candidates := groups[name]
		best := candidates[0]
		for _, c := range candidates[1:] {
			if CompareVersions(c.version, best.version) > 0 {
				best = c
			}
		}

		if len(candidates) > 1 {
			logger.Info("Selected highest version",
				"package", name,
				"version", best.version,
				"options", len(candidates),
			)
		}
		deduplicated = append(deduplicated, best.ref)
	}

	return deduplicated, selections
}

// CompareVersions compares two versions semantically, falling back to a
// plain string comparison when either side is not a valid version
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}

// CategorizePackages separates the reference of the primary package from the
// remaining (override) references
func CategorizePackages(refs []string, primary string) (string, []string) {
	var primaryRef string
	var overrides []string

	for _, ref := range refs {
		name, _, _ := ParseReference(ref)
		if primary != "" && name == primary {
			primaryRef = ref
			continue
		}
		overrides = append(overrides, ref)
	}

	return primaryRef, overrides
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
