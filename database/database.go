package database

import (
	"certiperu/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Participant{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
		&models.Certificate{},
		&models.CertificateTemplate{},
		&models.InstitutionSetting{},
	)
	if err != nil {
		return err
	}

	// At most one EMITIDO certificate per (participant, course). Enforced at
	// the storage layer so two concurrent issuance requests cannot both pass
	// the duplicate check and insert. AutoMigrate cannot express a partial
	// index, so it is created directly.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_certificates_issued_pair
		 ON certificates (participant_id, course_id)
		 WHERE status = 'EMITIDO' AND deleted_at IS NULL`,
	).Error; err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
