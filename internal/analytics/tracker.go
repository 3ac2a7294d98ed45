// Package analytics captures attribution at session start and emits
// fire-and-forget event beacons. Tracking never blocks and never fails the
// caller: publish and database errors are logged and dropped.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

// Event names emitted over the session lifecycle.
const (
	EventPageView               = "page_view"
	EventAssessmentStarted      = "assessment_started"
	EventAssessmentStartedFresh = "assessment_started_fresh"
	EventAssessmentRestarted    = "assessment_restarted"
	EventQuestionAnswered       = "question_answered"
	EventQuestionNavigation     = "question_navigation"
	EventAssessmentCompleted    = "assessment_completed"
	EventEmailGateSubmitted     = "email_gate_submitted"
	EventLeadFormSubmitted      = "lead_form_submitted"
	EventLeadFormSkipped        = "lead_form_skipped"
	EventScheduleCallClicked    = "schedule_call_clicked"
	EventReportDownloaded       = "report_downloaded"
)

// Event is a named notification with a free-form property bag.
type Event struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	SessionID    string         `json:"session_id"`
	AssessmentID *uint          `json:"assessment_id,omitempty"`
	Page         string         `json:"page,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

// EventSink is the optional durable destination for events (the events
// table). Implementations must tolerate being nil-checked by the tracker.
type EventSink interface {
	SaveEvent(ctx context.Context, event *models.EventRecord) error
}

// Tracker fans each event out to the beacon publisher and, when available,
// the durable sink.
type Tracker struct {
	publisher EventPublisher
	sink      EventSink
	logger    utils.Logger
}

func NewTracker(publisher EventPublisher, sink EventSink, logger utils.Logger) *Tracker {
	return &Tracker{publisher: publisher, sink: sink, logger: logger}
}

// Track emits a named event. Failures are logged and swallowed; Track never
// returns an error and never blocks the session flow.
func (t *Tracker) Track(ctx context.Context, sessionID, name string, properties map[string]any, assessmentID *uint) {
	event := &Event{
		ID:           uuid.NewString(),
		Name:         name,
		SessionID:    sessionID,
		AssessmentID: assessmentID,
		Properties:   properties,
		Timestamp:    time.Now(),
	}

	if err := t.publisher.PublishEvent(ctx, event); err != nil {
		t.logger.Warn("event beacon failed, continuing", "event_name", name, "error", err)
	}

	t.saveToSink(ctx, event)
}

// TrackPageView emits a page_view event for the named page.
func (t *Tracker) TrackPageView(ctx context.Context, sessionID, page string, properties map[string]any, assessmentID *uint) {
	event := &Event{
		ID:           uuid.NewString(),
		Name:         EventPageView,
		SessionID:    sessionID,
		AssessmentID: assessmentID,
		Page:         page,
		Properties:   properties,
		Timestamp:    time.Now(),
	}

	if err := t.publisher.PublishEvent(ctx, event); err != nil {
		t.logger.Warn("page view beacon failed, continuing", "page", page, "error", err)
	}

	t.saveToSink(ctx, event)
}

func (t *Tracker) saveToSink(ctx context.Context, event *Event) {
	if t.sink == nil {
		return
	}
	record, err := event.toRecord()
	if err != nil {
		t.logger.Warn("failed to encode event for storage", "event_name", event.Name, "error", err)
		return
	}
	if err := t.sink.SaveEvent(ctx, record); err != nil {
		t.logger.Warn("event storage failed, continuing without database tracking",
			"event_name", event.Name, "error", err)
	}
}

func (e *Event) toRecord() (*models.EventRecord, error) {
	data, err := json.Marshal(e.Properties)
	if err != nil {
		return nil, err
	}
	record := &models.EventRecord{
		AssessmentID: e.AssessmentID,
		SessionID:    e.SessionID,
		EventName:    e.Name,
		EventData:    datatypes.JSON(data),
		Timestamp:    e.Timestamp,
	}
	if e.Page != "" {
		page := e.Page
		record.Page = &page
	}
	return record, nil
}

// NewSessionID generates a unique session identifier.
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// CaptureTrackingData builds the immutable attribution snapshot for a
// session: UTM parameters from the landing page URL, referrer and user
// agent, stamped once at session start.
func CaptureTrackingData(sessionID, landingPage, referrer, userAgent string) models.TrackingData {
	return models.TrackingData{
		UTM:         parseUTMParams(landingPage),
		Referrer:    referrer,
		LandingPage: landingPage,
		UserAgent:   userAgent,
		Timestamp:   time.Now(),
		SessionID:   sessionID,
	}
}

func parseUTMParams(landingPage string) models.UTMParams {
	u, err := url.Parse(landingPage)
	if err != nil {
		return models.UTMParams{}
	}
	query := u.Query()
	return models.UTMParams{
		Source:   query.Get("utm_source"),
		Medium:   query.Get("utm_medium"),
		Campaign: query.Get("utm_campaign"),
		Term:     query.Get("utm_term"),
		Content:  query.Get("utm_content"),
	}
}
