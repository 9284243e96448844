package inventory

import (
	"github.com/erp/usability/internal/domain/shared"
)

// Package groups one or more quants. Unpacking removes the grouping and
// leaves the quants as free-standing stock; the package row itself stays.
type Package struct {
	shared.BaseEntity
	Name string
}

// NewPackage creates an empty package
func NewPackage(name string) *Package {
	return &Package{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}
}

// Unpack detaches every given quant that belongs to this package and
// returns how many were detached.
func (p *Package) Unpack(quants []*Quant) int {
	n := 0
	for _, q := range quants {
		if q.InPackage() && *q.PackageID == p.ID {
			q.RemoveFromPackage()
			n++
		}
	}
	return n
}
