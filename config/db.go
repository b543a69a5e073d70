package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"civilregistry/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// PingDB probes the database before anything else boots. An unreachable
// store at startup is fatal, the caller must not serve without one.
func PingDB() error {
	probe, err := sql.Open("postgres", GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer probe.Close()

	if err := probe.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// BootDB initializes the gorm connection and runs migrations.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()
	var err error

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	return db, nil
}

// BootPgxPool opens the pool used by the raw-SQL account repository.
func BootPgxPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database via pgx: %w", err)
	}

	return pool, nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'gender_enum') THEN
			CREATE TYPE gender_enum AS ENUM ('Male', 'Female');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create gender ENUM: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'role_enum') THEN
			CREATE TYPE role_enum AS ENUM ('User', 'Admin');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create role ENUM: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'registration_status_enum') THEN
			CREATE TYPE registration_status_enum AS ENUM ('Pending', 'Approved', 'Rejected');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create registration status ENUM: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Registration{},
		&domain.Request{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	return seedAdmin(db)
}

// seedAdmin creates the default administrator account when none exists.
func seedAdmin(db *gorm.DB) error {
	var existingAdmin domain.User
	err := db.Where("role = 'Admin'").First(&existingAdmin).Error
	if err == nil {
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	fmt.Println("Creating default admin account....")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), GetBcryptCost())
	if err != nil {
		return fmt.Errorf("could not hash password: %v", err)
	}

	now := time.Now()
	admin := domain.User{
		Email:      adminEmail,
		Password:   string(hashedPassword),
		Role:       domain.RoleAdmin,
		FullName:   "System Administrator",
		BirthPlace: "-",
		Address:    "-",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	fmt.Println("Admin account created")

	return nil
}
