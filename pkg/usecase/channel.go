package usecase

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

// Channel names with a fixed meaning
const (
	ChannelStable  = "stable"
	ChannelTesting = "testing"
)

// Namespaces holds the fixed namespaces packages are published under
type Namespaces struct {
	Default         string // User of regular development builds
	Internal        string // User of internal builds
	InternalChannel string // Channel of internal release builds
}

// DefaultNamespaces returns the namespaces used when none are configured
func DefaultNamespaces() Namespaces {
	return Namespaces{
		Default:         "ultimaker",
		Internal:        "internal",
		InternalChannel: ChannelStable,
	}
}

// ChannelInput is everything the channel of a package is derived from
type ChannelInput struct {
	Release     model.ReleaseContext
	Channel     string // Explicit channel override
	User        string // Explicit user override
	UserChannel string // Explicit "user/channel" override
}

// ChannelRule derives a channel from the input. Apply reports false when the
// rule does not match.
type ChannelRule struct {
	Name  string
	Apply func(in *ChannelInput, ns Namespaces) (model.Channel, bool)
}

var releaseBranchPattern = regexp.MustCompile(`^\d+\.\d+$`)

// ChannelRules returns the channel rules in priority order
func ChannelRules() []ChannelRule {
	return []ChannelRule{
		{Name: "release", Apply: applyRelease},
		{Name: "override", Apply: applyOverride},
		{Name: "release-branch", Apply: applyReleaseBranch},
		{Name: "mainline", Apply: applyMainline},
		{Name: "ticket", Apply: applyTicket},
	}
}

// ChannelResolver picks the channel of the first matching rule
type ChannelResolver struct {
	namespaces Namespaces
	rules      []ChannelRule
}

// NewChannelResolver creates a resolver over ChannelRules
func NewChannelResolver(ns Namespaces) *ChannelResolver {
	return &ChannelResolver{
		namespaces: ns,
		rules:      ChannelRules(),
	}
}

// Resolve returns the channel and the name of the rule that produced it
func (r *ChannelResolver) Resolve(in *ChannelInput) (model.Channel, string) {
	for _, rule := range r.rules {
		if ch, ok := rule.Apply(in, r.namespaces); ok {
			ch.IsReleaseBranch = ch.IsReleaseBranch || IsReleaseBranch(in.Release)
			return ch, rule.Name
		}
	}

	// The ticket rule always matches; this keeps the resolver total anyway
	return model.Channel{Name: ChannelTesting, User: namespace(in, r.namespaces)}, "fallback"
}

// IsReleaseBranch reports whether a build belongs to a release line: release
// builds and builds of a major.minor branch. It does not depend on which
// channel rule matched.
func IsReleaseBranch(rc model.ReleaseContext) bool {
	return rc.IsRelease || releaseBranchPattern.MatchString(rc.EffectiveRef())
}

// applyRelease gives production releases no namespace, or the internal pair
func applyRelease(in *ChannelInput, ns Namespaces) (model.Channel, bool) {
	if !in.Release.IsRelease {
		return model.Channel{}, false
	}
	if in.Release.IsInternal {
		return model.Channel{Name: ns.InternalChannel, User: ns.Internal}, true
	}
	return model.Channel{}, true
}

func applyOverride(in *ChannelInput, ns Namespaces) (model.Channel, bool) {
	_, channel := splitUserChannel(in.UserChannel)
	if channel == "" {
		channel = cleanSegment(in.Channel)
	}
	if channel == "" {
		return model.Channel{}, false
	}
	return model.Channel{Name: channel, User: namespace(in, ns)}, true
}

func applyReleaseBranch(in *ChannelInput, ns Namespaces) (model.Channel, bool) {
	if !releaseBranchPattern.MatchString(in.Release.EffectiveRef()) {
		return model.Channel{}, false
	}
	return model.Channel{Name: ChannelStable, User: namespace(in, ns), IsReleaseBranch: true}, true
}

func applyMainline(in *ChannelInput, ns Namespaces) (model.Channel, bool) {
	switch in.Release.EffectiveRef() {
	case "main", "master":
		return model.Channel{Name: ChannelTesting, User: namespace(in, ns)}, true
	default:
		return model.Channel{}, false
	}
}

func applyTicket(in *ChannelInput, ns Namespaces) (model.Channel, bool) {
	channel := TicketChannel(in.Release.EffectiveRef())
	if channel == "" {
		channel = ChannelTesting
	}
	return model.Channel{Name: channel, User: namespace(in, ns)}, true
}

// TicketChannel derives a channel from a branch name such as CURA-12824 by
// keeping its first two "_" or "-" separated tokens. Characters that cannot
// appear in a channel are replaced with "_". It returns an empty string when
// nothing usable remains.
func TicketChannel(ref string) string {
	normalized := strings.ToLower(strings.ReplaceAll(ref, "-", "_"))
	tokens := strings.Split(normalized, "_")
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}

	return cleanSegment(strings.Join(tokens, "_"))
}

// cleanSegment lower-cases s and replaces every character that cannot appear
// in a user or channel segment with "_". A result without letters or digits
// is returned as "".
func cleanSegment(s string) string {
	segment := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '+', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.ToLower(strings.TrimSpace(s)))

	if strings.Trim(segment, "_.+-") == "" {
		return ""
	}
	return segment
}

// namespace returns the user for non-release builds
func namespace(in *ChannelInput, ns Namespaces) string {
	if user, _ := splitUserChannel(in.UserChannel); user != "" {
		return user
	}
	if user := cleanSegment(in.User); user != "" {
		return user
	}
	if in.Release.IsInternal {
		return ns.Internal
	}
	return ns.Default
}

// splitUserChannel splits "user/channel" on the first "/". Further slashes
// are cleaned out of the channel.
func splitUserChannel(s string) (string, string) {
	user, channel, _ := strings.Cut(s, "/")
	return cleanSegment(user), cleanSegment(channel)
}
