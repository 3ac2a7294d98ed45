package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
)

type EventPostgreSQL struct {
	db *gorm.DB
}

func NewEventPostgreSQL(db *gorm.DB) repositories.EventRepository {
	return &EventPostgreSQL{db: db}
}

func (e *EventPostgreSQL) SaveEvent(ctx context.Context, event *models.EventRecord) error {
	if err := e.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (e *EventPostgreSQL) GetBySessionID(ctx context.Context, sessionID string) ([]*models.EventRecord, error) {
	var events []*models.EventRecord
	err := e.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get events by session: %w", err)
	}

	return events, nil
}

func (e *EventPostgreSQL) GetEventCounts(ctx context.Context) ([]repositories.EventCount, error) {
	var counts []repositories.EventCount
	err := e.db.WithContext(ctx).Model(&models.EventRecord{}).
		Select("event_name, COUNT(*) as count").
		Group("event_name").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get event counts: %w", err)
	}

	return counts, nil
}
