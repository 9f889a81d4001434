package database

import (
	"errors"
	"fmt"

	"github.com/billify/billify-api/internal/config"
	"github.com/billify/billify-api/internal/domain/entity"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Payment{},
		&entity.SupportTicket{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDemoProducts loads a small scannable catalog so a fresh install has
// something to scan. Existing barcodes are left untouched.
func SeedDemoProducts(db *gorm.DB, log *zap.Logger) error {
	grocery := "Grocery"
	beverages := "Beverages"
	snacks := "Snacks"

	products := []entity.Product{
		{Barcode: "8901063092730", Name: "Britannia Marie Gold 250g", Price: 4500, Category: &snacks},
		{Barcode: "8901030865278", Name: "Surf Excel Matic 1kg", Price: 22000, Category: &grocery},
		{Barcode: "8901719110018", Name: "Parle-G Gold 1kg", Price: 14000, Category: &snacks},
		{Barcode: "8904004402025", Name: "Amul Taaza Toned Milk 1L", Price: 6500, Category: &beverages},
		{Barcode: "8901058851826", Name: "Maggi 2-Minute Noodles 560g", Price: 11200, Category: &grocery},
		{Barcode: "5449000000996", Name: "Coca-Cola 750ml", Price: 4000, Category: &beverages},
	}

	for i := range products {
		var existing entity.Product
		err := db.Where("barcode = ?", products[i].Barcode).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&products[i]).Error; err != nil {
			log.Warn("failed to seed product",
				zap.String("barcode", products[i].Barcode),
				zap.Error(err))
		}
	}

	log.Info("demo catalog seeded", zap.Int("products", len(products)))
	return nil
}
