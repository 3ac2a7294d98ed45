package repositories

import (
	"context"
	"time"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

// AssessmentFilters narrows List queries over completed assessments.
type AssessmentFilters struct {
	CompletedFrom *time.Time
	CompletedTo   *time.Time
	Level         models.ReadinessLevel
	UTMSource     string
	Limit         int
	Offset        int
}

// LevelCount is one bucket of the readiness level distribution.
type LevelCount struct {
	Level models.ReadinessLevel `json:"assessment_level"`
	Count int64                 `json:"count"`
}

// EventCount is one bucket of the event name distribution.
type EventCount struct {
	EventName string `json:"event_name"`
	Count     int64  `json:"count"`
}

// SourceCount is one bucket of the utm_source distribution.
type SourceCount struct {
	UTMSource string `json:"utm_source"`
	Count     int64  `json:"count"`
}

// AssessmentStats aggregates the funnel for reporting.
type AssessmentStats struct {
	TotalAssessments   int64        `json:"total_assessments"`
	TotalLeads         int64        `json:"total_leads"`
	LeadConversionRate float64      `json:"lead_conversion_rate"`
	AverageScore       float64      `json:"average_score"`
	LevelDistribution  []LevelCount `json:"level_distribution"`
}

// AssessmentRepository persists completed assessments with their nested
// answers, category scores, recommendations and tracking snapshot. Save
// populates the record's ID; callers hand it back for lead submission.
type AssessmentRepository interface {
	Save(ctx context.Context, assessment *models.AssessmentRecord) error
	GetByID(ctx context.Context, id uint) (*models.AssessmentRecord, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.AssessmentRecord, error)
	List(ctx context.Context, filters AssessmentFilters) ([]*models.AssessmentRecord, int64, error)

	// Reporting aggregates
	GetStats(ctx context.Context) (*AssessmentStats, error)
	GetUTMSourceBreakdown(ctx context.Context) ([]SourceCount, error)
}

// LeadRepository persists lead form submissions with their challenges.
type LeadRepository interface {
	Save(ctx context.Context, lead *models.LeadRecord) error
	GetByAssessmentID(ctx context.Context, assessmentID uint) (*models.LeadRecord, error)
}

// EventRepository persists the event audit trail. SaveEvent satisfies the
// tracker's durable sink.
type EventRepository interface {
	SaveEvent(ctx context.Context, event *models.EventRecord) error
	GetBySessionID(ctx context.Context, sessionID string) ([]*models.EventRecord, error)
	GetEventCounts(ctx context.Context) ([]EventCount, error)
}
