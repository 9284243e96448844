// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table with a surrogate key
//   - catalog.go: product templates, variants and the tax definition association
//   - inventory.go: locations, quants, packages, adjustments and reordering rules
//   - picking.go: transfers, moves, pack operations, procurement groups and incoterms
//   - partner.go: partners and posted messages
//   - module_version.go: installed module versions read by upgrade steps
package models

// All returns every model, in dependency order, for AutoMigrate in tests and tooling.
func All() []any {
	return []any{
		&ModuleVersionModel{},
		&ProductTemplateModel{},
		&ProductVariantModel{},
		&TaxDefinitionProductRelModel{},
		&PartnerModel{},
		&LocationModel{},
		&PackageModel{},
		&QuantModel{},
		&ProcurementGroupModel{},
		&PickingModel{},
		&StockMoveModel{},
		&PackOperationModel{},
		&MessageModel{},
		&IncotermModel{},
		&InventoryModel{},
		&InventoryLineModel{},
		&OrderpointModel{},
	}
}
