package persistence

import (
	"strings"

	"github.com/erp/usability/internal/domain/shared"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// PickingSortFields contains allowed sort fields for transfers
var PickingSortFields = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"origin":         true,
	"state":          true,
	"scheduled_date": true,
}

// InventorySortFields contains allowed sort fields for inventory adjustments
var InventorySortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"date":       true,
	"state":      true,
}

// orderClause builds the ORDER BY clause for a list filter.
// An empty or unknown OrderBy keeps fallback; id is appended as a tiebreaker.
func orderClause(filter shared.Filter, allowedFields map[string]bool, fallback string) string {
	field := ValidateSortField(filter.OrderBy, allowedFields, "")
	if field == "" {
		return fallback
	}
	dir := ValidateSortOrder(filter.OrderDir)
	return field + " " + dir + ", id " + dir
}
