package models

import (
	"github.com/erp/usability/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductTemplateModel is the persistence model for product templates.
type ProductTemplateModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	UomName string `gorm:"type:varchar(50);not null;default:'Units'"`
}

// TableName returns the table name for GORM
func (ProductTemplateModel) TableName() string {
	return "product_template"
}

// ToDomain converts the persistence model to a domain ProductTemplate.
func (m *ProductTemplateModel) ToDomain() *catalog.ProductTemplate {
	return &catalog.ProductTemplate{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		UomName:    m.UomName,
	}
}

// FromDomain populates the persistence model from a domain ProductTemplate.
func (m *ProductTemplateModel) FromDomain(t *catalog.ProductTemplate) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.UomName = t.UomName
}

// ProductTemplateModelFromDomain creates a new persistence model from a domain ProductTemplate.
func ProductTemplateModelFromDomain(t *catalog.ProductTemplate) *ProductTemplateModel {
	m := &ProductTemplateModel{}
	m.FromDomain(t)
	return m
}

// ProductVariantModel is the persistence model for product variants.
type ProductVariantModel struct {
	BaseModel
	ProductTmplID uuid.UUID `gorm:"type:uuid;not null;index"`
	DefaultCode   string    `gorm:"type:varchar(64)"`
}

// TableName returns the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_product"
}

// ToDomain converts the persistence model to a domain ProductVariant.
func (m *ProductVariantModel) ToDomain() *catalog.ProductVariant {
	return &catalog.ProductVariant{
		BaseEntity:  m.BaseModel.ToDomain(),
		TemplateID:  m.ProductTmplID,
		DefaultCode: m.DefaultCode,
	}
}

// ProductVariantModelFromDomain creates a new persistence model from a domain ProductVariant.
func ProductVariantModelFromDomain(v *catalog.ProductVariant) *ProductVariantModel {
	m := &ProductVariantModel{
		ProductTmplID: v.TemplateID,
		DefaultCode:   v.DefaultCode,
	}
	m.FromDomainBaseEntity(v.BaseEntity)
	return m
}

// TaxDefinitionProductRelModel is one row of the tax definition <-> product association table.
// The table has no surrogate key.
type TaxDefinitionProductRelModel struct {
	TaxDefinitionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (TaxDefinitionProductRelModel) TableName() string {
	return "tax_definition_product_rel"
}

// ToDomain converts the persistence model to a domain TaxDefinitionLink.
func (m *TaxDefinitionProductRelModel) ToDomain() catalog.TaxDefinitionLink {
	return catalog.TaxDefinitionLink{
		TaxDefinitionID: m.TaxDefinitionID,
		ProductID:       m.ProductID,
	}
}
