package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pkgcoord/pkg/cli/config"
	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

func TestCI_ReleaseContext(t *testing.T) {
	cfg := &config.CI{
		EventName: "pull_request",
		RefName:   "12/merge",
		HeadRef:   "CURA-12",
		Release:   false,
		Internal:  true,
	}

	gt.V(t, cfg.ReleaseContext()).Equal(model.ReleaseContext{
		EventName:  "pull_request",
		RefName:    "12/merge",
		HeadRef:    "CURA-12",
		IsInternal: true,
	})
}

func TestNamespace_Namespaces(t *testing.T) {
	cfg := &config.Namespace{
		DefaultUser:     "acme",
		InternalUser:    "acme_internal",
		InternalChannel: "stable",
	}

	ns := cfg.Namespaces()
	gt.Equal(t, ns.Default, "acme")
	gt.Equal(t, ns.Internal, "acme_internal")
	gt.Equal(t, ns.InternalChannel, "stable")
}
