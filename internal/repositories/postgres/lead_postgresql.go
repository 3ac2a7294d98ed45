package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadPostgreSQL struct {
	db *gorm.DB
}

func NewLeadPostgreSQL(db *gorm.DB) repositories.LeadRepository {
	return &LeadPostgreSQL{db: db}
}

// Save writes the lead and its challenge rows in one transaction.
func (l *LeadPostgreSQL) Save(ctx context.Context, lead *models.LeadRecord) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lead).Error; err != nil {
			return fmt.Errorf("failed to save lead: %w", err)
		}
		return nil
	})
}

// GetByAssessmentID retrieves the lead submitted for an assessment.
func (l *LeadPostgreSQL) GetByAssessmentID(ctx context.Context, assessmentID uint) (*models.LeadRecord, error) {
	var lead models.LeadRecord
	err := l.db.WithContext(ctx).
		Preload("Challenges").
		Where("assessment_id = ?", assessmentID).
		First(&lead).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}
