package model

import "strings"

// EventPullRequest is the CI event name of a pull request build
const EventPullRequest = "pull_request"

// ReleaseContext holds the CI facts the channel resolution depends on
type ReleaseContext struct {
	EventName  string // CI event name (push, pull_request, workflow_dispatch, ...)
	RefName    string // Short ref name of the build
	HeadRef    string // Source branch of a pull request
	IsRelease  bool   // Production release build
	IsInternal bool   // Build published to the internal namespace
}

// EffectiveRef returns the ref the channel is derived from. Pull requests use
// their head branch; everything else uses the ref name. Fully qualified
// branch and tag refs are shortened.
func (x ReleaseContext) EffectiveRef() string {
	ref := x.RefName
	if x.EventName == EventPullRequest {
		ref = x.HeadRef
	}

	ref = strings.TrimSpace(ref)
	for _, prefix := range []string{"refs/heads/", "refs/tags/"} {
		ref = strings.TrimPrefix(ref, prefix)
	}
	return ref
}
