package usecase

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

// commitHashLength is the number of commit hash characters used as build metadata
const commitHashLength = 6

// ResolveVersion combines an explicit override, the descriptor version and a
// commit hash into a VersionSpec. The override takes precedence over the
// descriptor. Build metadata given after a "+" is kept as is and the commit
// hash is ignored; otherwise the shortened commit hash becomes the metadata.
func ResolveVersion(override, configured, sha string) (model.VersionSpec, error) {
	version := strings.TrimSpace(override)
	if version == "" {
		version = strings.TrimSpace(configured)
	}
	if version == "" {
		return model.VersionSpec{}, goerr.New("no version available from override or project descriptor",
			goerr.T(ErrTagConfiguration))
	}

	base, metadata, hasMetadata := strings.Cut(version, "+")
	if base == "" {
		return model.VersionSpec{}, goerr.New("version has no base part",
			goerr.V("version", version),
			goerr.T(ErrTagConfiguration))
	}

	if !hasMetadata {
		metadata = shortHash(sha)
	}

	return model.VersionSpec{
		Base:          base,
		BuildMetadata: metadata,
	}, nil
}

// shortHash returns the first characters of a hex commit hash. Anything that
// is not a hex string yields no metadata.
func shortHash(sha string) string {
	sha = strings.ToLower(strings.TrimSpace(sha))
	if strings.Trim(sha, "0123456789abcdef") != "" {
		return ""
	}
	if len(sha) > commitHashLength {
		return sha[:commitHashLength]
	}
	return sha
}
