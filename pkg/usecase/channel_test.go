package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
	"github.com/m-mizutani/pkgcoord/pkg/usecase"
)

func TestChannelResolver_Resolve(t *testing.T) {
	resolver := usecase.NewChannelResolver(usecase.DefaultNamespaces())

	tests := []struct {
		name            string
		input           usecase.ChannelInput
		wantChannel     string
		wantUser        string
		wantRule        string
		wantReleaseBrch bool
	}{
		{
			name:            "Release has no namespace",
			input:           usecase.ChannelInput{Release: model.ReleaseContext{IsRelease: true, RefName: "main"}},
			wantRule:        "release",
			wantReleaseBrch: true,
		},
		{
			name: "Release ignores overrides",
			input: usecase.ChannelInput{
				Release:     model.ReleaseContext{IsRelease: true},
				Channel:     "custom",
				UserChannel: "someone/else",
			},
			wantRule:        "release",
			wantReleaseBrch: true,
		},
		{
			name:            "Internal release uses internal pair",
			input:           usecase.ChannelInput{Release: model.ReleaseContext{IsRelease: true, IsInternal: true}},
			wantChannel:     "stable",
			wantUser:        "internal",
			wantRule:        "release",
			wantReleaseBrch: true,
		},
		{
			name: "Combined override is lower-cased and split",
			input: usecase.ChannelInput{
				Release:     model.ReleaseContext{RefName: "main"},
				UserChannel: "Someone/CURA_1",
			},
			wantChannel: "cura_1",
			wantUser:    "someone",
			wantRule:    "override",
		},
		{
			name: "Combined override wins over channel override",
			input: usecase.ChannelInput{
				Release:     model.ReleaseContext{RefName: "main"},
				Channel:     "ignored",
				UserChannel: "a/b",
			},
			wantChannel: "b",
			wantUser:    "a",
			wantRule:    "override",
		},
		{
			name: "Channel override keeps default user",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "CURA-1"},
				Channel: "Experimental",
			},
			wantChannel: "experimental",
			wantUser:    "ultimaker",
			wantRule:    "override",
		},
		{
			name: "Combined override with extra slashes",
			input: usecase.ChannelInput{
				Release:     model.ReleaseContext{RefName: "main"},
				UserChannel: "a/b/c",
			},
			wantChannel: "b_c",
			wantUser:    "a",
			wantRule:    "override",
		},
		{
			name: "Channel override is cleaned",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "main"},
				Channel: "My Chan/x",
			},
			wantChannel: "my_chan_x",
			wantUser:    "ultimaker",
			wantRule:    "override",
		},
		{
			name: "User override is cleaned",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "main"},
				User:    "Some User@x",
			},
			wantChannel: "testing",
			wantUser:    "some_user_x",
			wantRule:    "mainline",
		},
		{
			name: "Unusable channel override is ignored",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "main"},
				Channel: "//",
			},
			wantChannel: "testing",
			wantUser:    "ultimaker",
			wantRule:    "mainline",
		},
		{
			name: "Channel override on release branch keeps marker",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "5.9"},
				Channel: "x",
			},
			wantChannel:     "x",
			wantUser:        "ultimaker",
			wantRule:        "override",
			wantReleaseBrch: true,
		},
		{
			name:            "Release branch is stable",
			input:           usecase.ChannelInput{Release: model.ReleaseContext{RefName: "6.1"}},
			wantChannel:     "stable",
			wantUser:        "ultimaker",
			wantRule:        "release-branch",
			wantReleaseBrch: true,
		},
		{
			name:        "Patch version is not a release branch",
			input:       usecase.ChannelInput{Release: model.ReleaseContext{RefName: "6.1.2"}},
			wantChannel: "6.1.2",
			wantUser:    "ultimaker",
			wantRule:    "ticket",
		},
		{
			name:        "Main is testing",
			input:       usecase.ChannelInput{Release: model.ReleaseContext{RefName: "main"}},
			wantChannel: "testing",
			wantUser:    "ultimaker",
			wantRule:    "mainline",
		},
		{
			name:        "Master is testing",
			input:       usecase.ChannelInput{Release: model.ReleaseContext{RefName: "master"}},
			wantChannel: "testing",
			wantUser:    "ultimaker",
			wantRule:    "mainline",
		},
		{
			name:        "Ticket branch",
			input:       usecase.ChannelInput{Release: model.ReleaseContext{RefName: "CURA-12824"}},
			wantChannel: "cura_12824",
			wantUser:    "ultimaker",
			wantRule:    "ticket",
		},
		{
			name: "Pull request uses head ref",
			input: usecase.ChannelInput{Release: model.ReleaseContext{
				EventName: "pull_request",
				RefName:   "1234/merge",
				HeadRef:   "NP-42-fix-things",
			}},
			wantChannel: "np_42",
			wantUser:    "ultimaker",
			wantRule:    "ticket",
		},
		{
			name: "Pull request from release branch",
			input: usecase.ChannelInput{Release: model.ReleaseContext{
				EventName: "pull_request",
				RefName:   "1234/merge",
				HeadRef:   "5.9",
			}},
			wantChannel:     "stable",
			wantUser:        "ultimaker",
			wantRule:        "release-branch",
			wantReleaseBrch: true,
		},
		{
			name:        "Internal build uses internal user",
			input:       usecase.ChannelInput{Release: model.ReleaseContext{RefName: "main", IsInternal: true}},
			wantChannel: "testing",
			wantUser:    "internal",
			wantRule:    "mainline",
		},
		{
			name: "User override applies to derived channel",
			input: usecase.ChannelInput{
				Release: model.ReleaseContext{RefName: "CURA-7"},
				User:    "Me",
			},
			wantChannel: "cura_7",
			wantUser:    "me",
			wantRule:    "ticket",
		},
		{
			name: "Combined override without channel only sets user",
			input: usecase.ChannelInput{
				Release:     model.ReleaseContext{RefName: "main"},
				UserChannel: "someone",
			},
			wantChannel: "testing",
			wantUser:    "someone",
			wantRule:    "mainline",
		},
		{
			name:        "Empty ref falls back to testing",
			input:       usecase.ChannelInput{},
			wantChannel: "testing",
			wantUser:    "ultimaker",
			wantRule:    "ticket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, rule := resolver.Resolve(&tt.input)
			gt.Equal(t, ch.Name, tt.wantChannel)
			gt.Equal(t, ch.User, tt.wantUser)
			gt.Equal(t, rule, tt.wantRule)
			gt.Equal(t, ch.IsReleaseBranch, tt.wantReleaseBrch)
		})
	}
}

func TestChannelResolver_CustomNamespaces(t *testing.T) {
	resolver := usecase.NewChannelResolver(usecase.Namespaces{
		Default:         "acme",
		Internal:        "acme-private",
		InternalChannel: "release",
	})

	ch, _ := resolver.Resolve(&usecase.ChannelInput{Release: model.ReleaseContext{RefName: "main"}})
	gt.Equal(t, ch.User, "acme")

	ch, _ = resolver.Resolve(&usecase.ChannelInput{Release: model.ReleaseContext{IsRelease: true, IsInternal: true}})
	gt.Equal(t, ch.User, "acme-private")
	gt.Equal(t, ch.Name, "release")
}

func TestChannelRules_Order(t *testing.T) {
	var names []string
	for _, rule := range usecase.ChannelRules() {
		names = append(names, rule.Name)
	}
	gt.V(t, names).Equal([]string{"release", "override", "release-branch", "mainline", "ticket"})
}

func TestChannelRules_Isolated(t *testing.T) {
	rules := map[string]usecase.ChannelRule{}
	for _, rule := range usecase.ChannelRules() {
		rules[rule.Name] = rule
	}
	ns := usecase.DefaultNamespaces()

	t.Run("Release branch rule ignores mainline", func(t *testing.T) {
		_, ok := rules["release-branch"].Apply(&usecase.ChannelInput{Release: model.ReleaseContext{RefName: "main"}}, ns)
		gt.False(t, ok)
	})

	t.Run("Mainline rule ignores release branch", func(t *testing.T) {
		_, ok := rules["mainline"].Apply(&usecase.ChannelInput{Release: model.ReleaseContext{RefName: "5.0"}}, ns)
		gt.False(t, ok)
	})

	t.Run("Override rule needs a channel", func(t *testing.T) {
		_, ok := rules["override"].Apply(&usecase.ChannelInput{User: "someone"}, ns)
		gt.False(t, ok)
	})

	t.Run("Ticket rule always matches", func(t *testing.T) {
		ch, ok := rules["ticket"].Apply(&usecase.ChannelInput{Release: model.ReleaseContext{RefName: "main"}}, ns)
		gt.True(t, ok)
		gt.Equal(t, ch.Name, "main")
	})
}

func TestIsReleaseBranch(t *testing.T) {
	tests := []struct {
		name     string
		release  model.ReleaseContext
		expected bool
	}{
		{name: "Release build", release: model.ReleaseContext{IsRelease: true, RefName: "v5.9.0"}, expected: true},
		{name: "Major minor branch", release: model.ReleaseContext{RefName: "5.9"}, expected: true},
		{name: "Branch ref prefix", release: model.ReleaseContext{RefName: "refs/heads/5.9"}, expected: true},
		{name: "Pull request head", release: model.ReleaseContext{EventName: "pull_request", RefName: "1/merge", HeadRef: "5.9"}, expected: true},
		{name: "Main", release: model.ReleaseContext{RefName: "main"}, expected: false},
		{name: "Patch version", release: model.ReleaseContext{RefName: "5.9.1"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, usecase.IsReleaseBranch(tt.release), tt.expected)
		})
	}
}

func TestTicketChannel(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{ref: "CURA-12824", expected: "cura_12824"},
		{ref: "CURA-12824-add-feature", expected: "cura_12824"},
		{ref: "PP_123_fix", expected: "pp_123"},
		{ref: "hotfix", expected: "hotfix"},
		{ref: "feature/CURA-1", expected: "feature_cura_1"},
		{ref: "Ünïcode-branch", expected: "_n_code_branch"},
		{ref: "--", expected: ""},
		{ref: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			gt.Equal(t, usecase.TicketChannel(tt.ref), tt.expected)
		})
	}
}
