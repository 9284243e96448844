package persistence

import (
	"errors"

	"github.com/erp/usability/internal/domain/shared"
	"gorm.io/gorm"
)

// translateNotFound maps GORM's missing-row error to the domain sentinel
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// translateDuplicate maps a unique-constraint violation to dup. Raw driver
// errors are passed through the dialect's translator first, so this works
// whether or not the connection was opened with TranslateError.
func translateDuplicate(db *gorm.DB, err error, dup error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		if translator, ok := db.Dialector.(gorm.ErrorTranslator); ok {
			if translated := translator.Translate(err); errors.Is(translated, gorm.ErrDuplicatedKey) {
				err = translated
			}
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dup
	}
	return err
}
