package model

// BroadcastInput is the raw CI input of a resolution
type BroadcastInput struct {
	PackageName string
	WorkingDir  string // Directory holding the project descriptor

	VersionOverride string
	CommitSHA       string

	Release ReleaseContext

	ChannelOverride     string
	UserOverride        string
	UserChannelOverride string // Combined "user/channel" form
}

// FinderQuery selects where package references are taken from. Sources are
// tried in the order SearchPattern, RawOutput, Packages; a nil Packages slice
// means the source is not set.
type FinderQuery struct {
	SearchPattern string
	RawOutput     string
	Packages      []string
	Primary       string // Package name reported separately from overrides
}
