package infra

import (
	"fmt"

	"github.com/Yogesh-MG/inventory-os/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate. TranslateError is on so unique-key and FK violations surface
// as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated — duplicate and
// referential races are resolved by the constraints, not by pre-checks.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Party{},
		&model.Order{},
		&model.OrderItem{},
		&model.Bill{},
		&model.PurchaseOrder{},
		&model.WorkflowRule{},
		&model.Alert{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
