package inventory

import (
	"fmt"

	"github.com/erp/usability/internal/domain/shared"
)

// Incoterm is an international commercial term
type Incoterm struct {
	shared.BaseEntity
	Code string
	Name string
}

// DisplayName renders "[CODE] Name"
func (i *Incoterm) DisplayName() string {
	return fmt.Sprintf("[%s] %s", i.Code, i.Name)
}
