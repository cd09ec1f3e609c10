package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// translate converts GORM's discriminated failures into this package's
// sentinel errors. Requires gorm.Config{TranslateError: true} so driver
// specifics (postgres, sqlite) surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
