package model

// VersionSpec is a resolved package version split into its base and build metadata
type VersionSpec struct {
	Base          string // Dot-separated version, may carry a prerelease part
	BuildMetadata string // Usually a truncated commit hash; may be empty
}

// Full returns the version including build metadata, if any
func (v VersionSpec) Full() string {
	if v.BuildMetadata == "" {
		return v.Base
	}
	return v.Base + "+" + v.BuildMetadata
}
