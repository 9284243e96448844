package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository reads products for display purposes
type ProductRepository interface {
	// FindVariantByID finds a variant together with its template
	FindVariantByID(ctx context.Context, id uuid.UUID) (*ProductVariant, *ProductTemplate, error)
}
