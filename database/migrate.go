package database

import (
	"fmt"

	"kirismor_backend/internal/config"
	"kirismor_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the database connection described in the config.
// The connection is cached; repeated calls return the same handle.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.CandidateProfile{},
		&models.ClientProfile{},
		&models.RecruiterProfile{},
		&models.Job{},
		&models.Application{},
		&models.Like{},
		&models.Favorite{},
		&models.GuestFeedback{},
		&models.TempGuestFeedback{},
		&models.JobRequest{},
		&models.JobRequestStatusUpdate{},
		&models.FavoriteRecruiter{},
		&models.Task{},
		&models.News{},
	)
}
