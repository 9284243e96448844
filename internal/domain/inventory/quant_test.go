package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuant_PackageMembership(t *testing.T) {
	q := NewQuant(uuid.New(), uuid.New(), decimal.NewFromInt(5))
	assert.False(t, q.InPackage())

	pkgID := uuid.New()
	q.PutInPackage(pkgID)
	assert.True(t, q.InPackage())
	assert.Equal(t, pkgID, *q.PackageID)

	q.RemoveFromPackage()
	assert.False(t, q.InPackage())
	assert.Nil(t, q.PackageID)
}

func TestDistinctPackageIDs(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	loc := uuid.New()

	a := NewQuant(uuid.New(), loc, decimal.NewFromInt(1))
	a.PutInPackage(p1)
	b := NewQuant(uuid.New(), loc, decimal.NewFromInt(1))
	b.PutInPackage(p2)
	c := NewQuant(uuid.New(), loc, decimal.NewFromInt(1))
	c.PutInPackage(p1)
	loose := NewQuant(uuid.New(), loc, decimal.NewFromInt(1))

	ids := DistinctPackageIDs([]Quant{*a, *b, *c, *loose})

	assert.Equal(t, []uuid.UUID{p1, p2}, ids)
	assert.Empty(t, DistinctPackageIDs(nil))
}

func TestPackage_Unpack(t *testing.T) {
	pkg := NewPackage("PACK0001")
	other := NewPackage("PACK0002")
	loc := uuid.New()

	inPkg := NewQuant(uuid.New(), loc, decimal.NewFromInt(3))
	inPkg.PutInPackage(pkg.ID)
	inOther := NewQuant(uuid.New(), loc, decimal.NewFromInt(3))
	inOther.PutInPackage(other.ID)
	loose := NewQuant(uuid.New(), loc, decimal.NewFromInt(3))

	n := pkg.Unpack([]*Quant{inPkg, inOther, loose})

	assert.Equal(t, 1, n)
	assert.False(t, inPkg.InPackage())
	assert.True(t, inOther.InPackage())
	assert.Equal(t, decimal.NewFromInt(3), inPkg.Quantity)
}
