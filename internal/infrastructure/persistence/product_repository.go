package persistence

import (
	"context"

	"github.com/erp/usability/internal/domain/catalog"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindVariantByID finds a variant and the template it belongs to
func (r *GormProductRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, *catalog.ProductTemplate, error) {
	var variant models.ProductVariantModel
	if err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error; err != nil {
		return nil, nil, translateNotFound(err)
	}

	var tmpl models.ProductTemplateModel
	if err := r.db.WithContext(ctx).First(&tmpl, "id = ?", variant.ProductTmplID).Error; err != nil {
		return nil, nil, translateNotFound(err)
	}

	return variant.ToDomain(), tmpl.ToDomain(), nil
}

// SaveTemplate creates or updates a product template
func (r *GormProductRepository) SaveTemplate(ctx context.Context, tmpl *catalog.ProductTemplate) error {
	return r.db.WithContext(ctx).Save(models.ProductTemplateModelFromDomain(tmpl)).Error
}

// SaveVariant creates or updates a product variant
func (r *GormProductRepository) SaveVariant(ctx context.Context, variant *catalog.ProductVariant) error {
	return r.db.WithContext(ctx).Save(models.ProductVariantModelFromDomain(variant)).Error
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
