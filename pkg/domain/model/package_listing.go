package model

// PackageListing is the result of searching remotes for packages
type PackageListing struct {
	Discovered        []string            `json:"discovered_packages"`
	Deduplicated      []string            `json:"deduplicated_packages"`
	Primary           string              `json:"cura_package"`
	Overrides         []string            `json:"override_packages"`
	VersionSelections map[string][]string `json:"version_selections"`
	OriginalCount     int                 `json:"original_count"`
	DeduplicatedCount int                 `json:"deduplicated_count"`
}
