package model

// Channel is the namespace pair a package is published under
type Channel struct {
	Name            string // Channel segment, e.g. testing, stable, cura_12824
	User            string // Namespace segment; empty for production releases
	IsReleaseBranch bool   // Release build or major.minor release branch
}

// Suffix returns the "@user/channel" part of a package reference. A channel
// is never emitted without a user.
func (c Channel) Suffix() string {
	if c.User == "" {
		return ""
	}
	return "@" + c.User + "/" + c.Name
}
