package inventory

import (
	"github.com/erp/usability/internal/domain/shared"
)

// ProcurementGroup groups the pickings generated for one need
type ProcurementGroup struct {
	shared.BaseEntity
	Name     string
	MoveType MoveType
}
