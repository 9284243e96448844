package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ProductUsabilityModule is the module whose upgrade steps live in this file
const ProductUsabilityModule = "product_usability"

const taxDefinitionProductRel = "tax_definition_product_rel"

// purgeOrphanTaxProductLinksSQL removes association rows whose product_id is
// neither a product template nor the template of any variant.
const purgeOrphanTaxProductLinksSQL = `DELETE FROM tax_definition_product_rel
 WHERE NOT EXISTS (SELECT 1 FROM product_template pt WHERE pt.id = tax_definition_product_rel.product_id)
   AND NOT EXISTS (SELECT 1 FROM product_product pp WHERE pp.product_tmpl_id = tax_definition_product_rel.product_id)`

// PurgeOrphanTaxProductLinks deletes dangling tax definition <-> product rows
// left behind by earlier versions and returns how many were removed.
//
// An empty installedVersion means the module is being installed fresh and
// there is nothing to clean. A database without the association table is
// left untouched.
func PurgeOrphanTaxProductLinks(ctx context.Context, db *gorm.DB, installedVersion string) (int64, error) {
	if installedVersion == "" {
		return 0, nil
	}

	exists, err := TableExists(ctx, db, taxDefinitionProductRel)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	result := db.WithContext(ctx).Exec(purgeOrphanTaxProductLinksSQL)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge orphan tax product links: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ProductUsabilitySteps returns the version-gated steps of the product usability module
func ProductUsabilitySteps() []UpgradeStep {
	return []UpgradeStep{
		{
			Module:  ProductUsabilityModule,
			Version: "13.0.1.0.0",
			Stage:   StagePre,
			Run: func(ctx context.Context, tx *gorm.DB, installedVersion string) (int64, error) {
				return PurgeOrphanTaxProductLinks(ctx, tx, installedVersion)
			},
		},
	}
}
