package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techgpt/techgpt-api/internal/config"
	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

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

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.ProviderProfile{},
		&entity.PasswordResetToken{},

		// Marketplace entities
		&entity.Job{},
		&entity.JobHardwareItem{},
		&entity.Booking{},

		// Support entities
		&entity.SupportTicket{},
		&entity.Notification{},
		&entity.SystemMessage{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SeedDefaultData creates the bootstrap admin account when none exists.
// Admin credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedDefaultData(db *gorm.DB) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("user_type = ?", enum.UserTypeAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.User{
		FirstName: "Platform",
		LastName:  "Admin",
		Email:     adminEmail,
		Password:  string(hashedPassword),
		UserType:  enum.UserTypeAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin account %s", adminEmail)
	return nil
}
