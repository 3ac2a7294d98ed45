package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssessmentPostgreSQL(db *gorm.DB) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{db: db}
}

// Save writes the assessment and all nested rows in one transaction. The
// record's ID is populated on success.
func (a *AssessmentPostgreSQL) Save(ctx context.Context, assessment *models.AssessmentRecord) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assessment).Error; err != nil {
			return fmt.Errorf("failed to save assessment: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an assessment with all nested detail rows.
func (a *AssessmentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.AssessmentRecord, error) {
	var assessment models.AssessmentRecord
	err := a.db.WithContext(ctx).
		Preload("Answers").
		Preload("CategoryScores").
		Preload("CategoryScores.Recommendations", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority_order ASC")
		}).
		Preload("Leads").
		Preload("Leads.Challenges").
		Preload("Tracking").
		First(&assessment, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	return &assessment, nil
}

// GetBySessionID retrieves the most recent assessment for a session.
func (a *AssessmentPostgreSQL) GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentRecord, error) {
	var assessment models.AssessmentRecord
	err := a.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("completed_at DESC").
		First(&assessment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to get assessment by session: %w", err)
	}

	return &assessment, nil
}

// List retrieves assessments matching the filters, newest first, with the
// total count before limit/offset.
func (a *AssessmentPostgreSQL) List(ctx context.Context, filters repositories.AssessmentFilters) ([]*models.AssessmentRecord, int64, error) {
	query := a.db.WithContext(ctx).Model(&models.AssessmentRecord{})

	if filters.CompletedFrom != nil {
		query = query.Where("completed_at >= ?", *filters.CompletedFrom)
	}
	if filters.CompletedTo != nil {
		query = query.Where("completed_at <= ?", *filters.CompletedTo)
	}
	if filters.Level != "" {
		query = query.Where("assessment_level = ?", filters.Level)
	}
	if filters.UTMSource != "" {
		query = query.Joins("JOIN tracking_data ON tracking_data.assessment_id = assessments.id").
			Where("tracking_data.utm_source = ?", filters.UTMSource)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assessments: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var assessments []*models.AssessmentRecord
	err := query.
		Preload("CategoryScores").
		Preload("Leads").
		Preload("Tracking").
		Order("completed_at DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assessments: %w", err)
	}

	return assessments, total, nil
}

// GetStats aggregates the assessment funnel.
func (a *AssessmentPostgreSQL) GetStats(ctx context.Context) (*repositories.AssessmentStats, error) {
	stats := &repositories.AssessmentStats{}

	if err := a.db.WithContext(ctx).Model(&models.AssessmentRecord{}).
		Count(&stats.TotalAssessments).Error; err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}

	if err := a.db.WithContext(ctx).Model(&models.LeadRecord{}).
		Count(&stats.TotalLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	if stats.TotalAssessments > 0 {
		stats.LeadConversionRate = float64(stats.TotalLeads) / float64(stats.TotalAssessments) * 100
	}

	var avg *float64
	if err := a.db.WithContext(ctx).Model(&models.AssessmentRecord{}).
		Select("AVG(overall_score)").Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}
	if avg != nil {
		stats.AverageScore = *avg
	}

	if err := a.db.WithContext(ctx).Model(&models.AssessmentRecord{}).
		Select("assessment_level as level, COUNT(*) as count").
		Group("assessment_level").
		Order("count DESC").
		Scan(&stats.LevelDistribution).Error; err != nil {
		return nil, fmt.Errorf("failed to get level distribution: %w", err)
	}

	return stats, nil
}

// GetUTMSourceBreakdown counts assessments per utm_source.
func (a *AssessmentPostgreSQL) GetUTMSourceBreakdown(ctx context.Context) ([]repositories.SourceCount, error) {
	var breakdown []repositories.SourceCount
	err := a.db.WithContext(ctx).Model(&models.TrackingRecord{}).
		Select("COALESCE(utm_source, 'direct') as utm_source, COUNT(*) as count").
		Group("utm_source").
		Order("count DESC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get utm source breakdown: %w", err)
	}

	return breakdown, nil
}
