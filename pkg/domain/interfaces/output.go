package interfaces

import "github.com/m-mizutani/pkgcoord/pkg/domain/model"

// VariableWriter writes fields as machine readable key=value variables
type VariableWriter interface {
	WriteVariables(fields []model.Field) error
}

// SummaryWriter writes fields as a human readable report
type SummaryWriter interface {
	WriteSummary(title string, fields []model.Field) error
}
