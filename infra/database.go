// Package infra wires the embedded database.
package infra

import (
	"github.com/mfarghaly/bankbook/infra/repository/model"
	"github.com/mfarghaly/bankbook/pkg/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the SQLite database at the configured path and runs
// schema migration. Foreign keys are switched on (SQLite leaves them off by
// default) and TranslateError is enabled so constraint violations surface
// as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func NewDBConnection(cfg config.DB) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Account{}, &model.TransactionEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}
