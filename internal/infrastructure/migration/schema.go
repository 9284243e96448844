package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TableExists reports whether a table (or view) with the given name exists in
// the database behind db. A failing lookup is returned as an error, never as
// "table missing".
func TableExists(ctx context.Context, db *gorm.DB, table string) (bool, error) {
	var count int64
	var err error

	switch db.Dialector.Name() {
	case "sqlite":
		err = db.WithContext(ctx).
			Raw("SELECT count(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?", table).
			Scan(&count).Error
	default:
		err = db.WithContext(ctx).
			Raw("SELECT count(*) FROM pg_class WHERE relkind IN ('r', 'v') AND relname = ?", table).
			Scan(&count).Error
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return count > 0, nil
}
