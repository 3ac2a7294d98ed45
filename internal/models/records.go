package models

import (
	"time"

	"gorm.io/datatypes"
)

// Relational mirror of a completed session. One AssessmentRecord per email
// gate submission, with nested answers, category scores, recommendations and
// the tracking snapshot. The record id is the server-issued assessment
// identifier handed back to the session for later lead submission.

type AssessmentRecord struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	SessionID         string         `json:"session_id" gorm:"not null;size:100;index"`
	Email             string         `json:"email" gorm:"not null;size:255;index"`
	Website           string         `json:"website" gorm:"not null;size:255"`
	OverallScore      int            `json:"overall_score" gorm:"not null"`
	OverallPercentage int            `json:"overall_percentage" gorm:"not null"`
	Level             ReadinessLevel `json:"assessment_level" gorm:"column:assessment_level;not null;size:50;index"`
	LevelIcon         string         `json:"level_icon" gorm:"size:16"`
	LevelDescription  string         `json:"level_description" gorm:"type:text"`
	QuickWinTip       string         `json:"quick_win_tip" gorm:"type:text"`
	CompletedAt       time.Time      `json:"completed_at" gorm:"index"`
	CreatedAt         time.Time      `json:"created_at"`

	Answers        []AnswerRecord        `json:"answers" gorm:"foreignKey:AssessmentID"`
	CategoryScores []CategoryScoreRecord `json:"category_scores" gorm:"foreignKey:AssessmentID"`
	Leads          []LeadRecord          `json:"leads" gorm:"foreignKey:AssessmentID"`
	Tracking       []TrackingRecord      `json:"tracking_data" gorm:"foreignKey:AssessmentID"`
	Events         []EventRecord         `json:"events" gorm:"foreignKey:AssessmentID"`
}

type AnswerRecord struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	AssessmentID uint     `json:"assessment_id" gorm:"not null;index"`
	QuestionID   string   `json:"question_id" gorm:"not null;size:50"`
	Category     Category `json:"category" gorm:"not null;size:50"`
	Value        int      `json:"value" gorm:"not null"`
}

type CategoryScoreRecord struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	AssessmentID uint     `json:"assessment_id" gorm:"not null;index"`
	Category     Category `json:"category" gorm:"not null;size:50"`
	Score        int      `json:"score" gorm:"not null"`
	MaxScore     int      `json:"max_score" gorm:"not null"`
	Percentage   int      `json:"percentage" gorm:"not null"`

	Recommendations []RecommendationRecord `json:"recommendations" gorm:"foreignKey:CategoryScoreID"`
}

type RecommendationRecord struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	CategoryScoreID uint   `json:"category_score_id" gorm:"not null;index"`
	Recommendation  string `json:"recommendation" gorm:"type:text;not null"`
	PriorityOrder   int    `json:"priority_order" gorm:"not null"`
}

type LeadRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	AssessmentID  uint      `json:"assessment_id" gorm:"not null;index"`
	FirstName     string    `json:"first_name" gorm:"not null;size:100"`
	LastName      string    `json:"last_name" gorm:"not null;size:100"`
	Email         string    `json:"email" gorm:"not null;size:255;index"`
	Company       string    `json:"company" gorm:"not null;size:255"`
	Phone         *string   `json:"phone" gorm:"size:32"`
	BusinessType  string    `json:"business_type" gorm:"not null;size:100"`
	AnnualRevenue *string   `json:"annual_revenue" gorm:"size:50"`
	TeamSize      *string   `json:"team_size" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`

	Challenges []LeadChallengeRecord `json:"challenges" gorm:"foreignKey:LeadID"`
}

type LeadChallengeRecord struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	LeadID    uint   `json:"lead_id" gorm:"not null;index"`
	Challenge string `json:"challenge" gorm:"not null;size:255"`
}

type TrackingRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;index"`
	SessionID    string    `json:"session_id" gorm:"not null;size:100;index"`
	UTMSource    *string   `json:"utm_source" gorm:"size:255;index"`
	UTMMedium    *string   `json:"utm_medium" gorm:"size:255"`
	UTMCampaign  *string   `json:"utm_campaign" gorm:"size:255"`
	UTMTerm      *string   `json:"utm_term" gorm:"size:255"`
	UTMContent   *string   `json:"utm_content" gorm:"size:255"`
	Referrer     string    `json:"referrer" gorm:"type:text"`
	LandingPage  string    `json:"landing_page" gorm:"type:text"`
	UserAgent    string    `json:"user_agent" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventRecord struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	AssessmentID *uint          `json:"assessment_id" gorm:"index"`
	SessionID    string         `json:"session_id" gorm:"not null;size:100;index"`
	EventName    string         `json:"event_name" gorm:"not null;size:100;index"`
	EventData    datatypes.JSON `json:"event_data"`
	Page         *string        `json:"page" gorm:"size:100"`
	Timestamp    time.Time      `json:"timestamp" gorm:"index"`
}

func (AssessmentRecord) TableName() string     { return "assessments" }
func (AnswerRecord) TableName() string         { return "assessment_answers" }
func (CategoryScoreRecord) TableName() string  { return "category_scores" }
func (RecommendationRecord) TableName() string { return "category_recommendations" }
func (LeadRecord) TableName() string           { return "leads" }
func (LeadChallengeRecord) TableName() string  { return "lead_challenges" }
func (TrackingRecord) TableName() string       { return "tracking_data" }
func (EventRecord) TableName() string          { return "events" }
