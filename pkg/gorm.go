package pkg

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ndevrinc/outdoor-quiz/internal/config"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Environment == "production" {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AssessmentRecord{},
		&models.AnswerRecord{},
		&models.CategoryScoreRecord{},
		&models.RecommendationRecord{},
		&models.LeadRecord{},
		&models.LeadChallengeRecord{},
		&models.TrackingRecord{},
		&models.EventRecord{},
	)
}
