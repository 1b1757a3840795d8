package repository

import (
	"errors"
	"fmt"

	"github.com/mfarghaly/bankbook/pkg/domain"
	"gorm.io/gorm"
)

// mapGormError converts GORM errors to domain errors so storage concerns do
// not leak out of the infrastructure layer. Errors without a mapping are
// treated as unexpected storage failures.
func mapGormError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
}
