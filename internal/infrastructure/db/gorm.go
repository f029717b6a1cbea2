package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fieldsight-backend/internal/domain/branding"
	"fieldsight-backend/internal/domain/identity"
	"fieldsight-backend/internal/domain/inspection"
	"fieldsight-backend/internal/domain/payout"
	"fieldsight-backend/internal/domain/submission"
	"fieldsight-backend/internal/platform/logging"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector is the seam tests use to swap in a mocked
// connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logging.GetLogger().Info("gorm: connected")
	return db, nil
}

// Migrate keeps the schema in sync with the domain entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.User{},
		&identity.RoleAssignment{},
		&inspection.Report{},
		&payout.Report{},
		&submission.Submission{},
		&branding.HeaderDetails{},
	)
}
