package catalog

import (
	"fmt"
	"strings"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductTemplate is the shared definition of a product across its variants
type ProductTemplate struct {
	shared.BaseEntity
	Name    string
	UomName string
}

// NewProductTemplate creates a product template
func NewProductTemplate(name, uomName string) (*ProductTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("product name cannot be empty")
	}
	return &ProductTemplate{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		UomName:    uomName,
	}, nil
}

// ProductVariant is a stockable variant of a template
type ProductVariant struct {
	shared.BaseEntity
	TemplateID  uuid.UUID
	DefaultCode string
}

// NewProductVariant creates a variant of the given template
func NewProductVariant(templateID uuid.UUID, defaultCode string) *ProductVariant {
	return &ProductVariant{
		BaseEntity:  shared.NewBaseEntity(),
		TemplateID:  templateID,
		DefaultCode: strings.TrimSpace(defaultCode),
	}
}

// VariantDisplayName renders a variant as "[CODE] Name", or just the name without a code
func VariantDisplayName(code, name string) string {
	if code == "" {
		return name
	}
	return fmt.Sprintf("[%s] %s", code, name)
}

// TaxDefinitionLink is one row of the tax definition <-> product association.
// ProductID may point at a template id or at the template of a variant.
type TaxDefinitionLink struct {
	TaxDefinitionID uuid.UUID
	ProductID       uuid.UUID
}
