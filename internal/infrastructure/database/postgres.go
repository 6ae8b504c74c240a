package database

import (
	"fmt"
	"log"

	"github.com/sangkips/bizledger-api/internal/config"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Business{},
		&entity.Employee{},

		// Catalog entities
		&entity.Supplier{},
		&entity.InventoryItem{},

		// Transaction entities
		&entity.Sale{},
		&entity.Appointment{},
		&entity.Expense{},
		&entity.Customer{},

		// System entities
		&entity.AuditLog{},
		&entity.SubscriptionPlan{},
		&entity.BusinessSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the subscription plans
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	plans := []entity.SubscriptionPlan{
		{Code: "monthly", Name: "Monthly", DurationMonths: 1, Price: 250000},
		{Code: "quarterly", Name: "Quarterly", DurationMonths: 3, Price: 675000},
		{Code: "yearly", Name: "Yearly", DurationMonths: 12, Price: 2400000},
	}

	for i := range plans {
		var existing entity.SubscriptionPlan
		if err := db.Where("code = ?", plans[i].Code).First(&existing).Error; err != nil {
			if err := db.Create(&plans[i]).Error; err != nil {
				log.Printf("Warning: failed to create plan %s: %v", plans[i].Code, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
