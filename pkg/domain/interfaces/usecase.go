package interfaces

import (
	"context"

	"github.com/m-mizutani/pkgcoord/pkg/domain/model"
)

// BroadcastUseCase resolves package coordinates and reports them
type BroadcastUseCase interface {
	// Resolve computes the coordinate of a package for one CI invocation
	Resolve(ctx context.Context, input *model.BroadcastInput) (*model.Resolution, error)

	// Emit writes the resolution as variables and as a summary report
	Emit(ctx context.Context, res *model.Resolution, variables VariableWriter, summary SummaryWriter) error
}

// FinderUseCase discovers published packages and selects one version per package
type FinderUseCase interface {
	// Find lists, deduplicates and categorizes packages
	Find(ctx context.Context, query *model.FinderQuery) (*model.PackageListing, error)
}
