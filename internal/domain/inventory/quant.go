package inventory

import (
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quant is a quantity of one product at one location.
// PackageID is a back-reference; the quant never owns its package.
type Quant struct {
	shared.BaseEntity
	ProductID  uuid.UUID
	LocationID uuid.UUID
	PackageID  *uuid.UUID
	LotID      *uuid.UUID
	Quantity   decimal.Decimal
}

// NewQuant creates a free-standing quant
func NewQuant(productID, locationID uuid.UUID, quantity decimal.Decimal) *Quant {
	return &Quant{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   quantity,
	}
}

// InPackage returns true if the quant currently belongs to a package
func (q *Quant) InPackage() bool {
	return q.PackageID != nil && *q.PackageID != uuid.Nil
}

// PutInPackage assigns the quant to a package
func (q *Quant) PutInPackage(packageID uuid.UUID) {
	id := packageID
	q.PackageID = &id
	q.Touch()
}

// RemoveFromPackage detaches the quant from its package
func (q *Quant) RemoveFromPackage() {
	q.PackageID = nil
	q.Touch()
}

// DistinctPackageIDs returns the packages referenced by the quants, in first-seen order
func DistinctPackageIDs(quants []Quant) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(quants))
	ids := make([]uuid.UUID, 0)
	for i := range quants {
		if !quants[i].InPackage() {
			continue
		}
		id := *quants[i].PackageID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
