package models

import (
	"time"
)

type Category string

const (
	CategoryAudienceExperience  Category = "Audience Experience"
	CategoryCreatorExperience   Category = "Creator Experience"
	CategoryDeveloperExperience Category = "Developer Experience"
	CategoryBusinessImpact      Category = "Business Impact"
)

// AllCategories returns the categories in catalog order of first appearance.
func AllCategories() []Category {
	return []Category{
		CategoryAudienceExperience,
		CategoryCreatorExperience,
		CategoryDeveloperExperience,
		CategoryBusinessImpact,
	}
}

type ReadinessLevel string

const (
	LevelBasecampBasics ReadinessLevel = "Basecamp Basics"
	LevelTrailReady     ReadinessLevel = "Trail Ready"
	LevelBaseCampStrong ReadinessLevel = "Base Camp Strong"
	LevelSummitReady    ReadinessLevel = "Summit Ready"
)

type RecommendationTier string

const (
	TierLow    RecommendationTier = "low"
	TierMedium RecommendationTier = "medium"
	TierHigh   RecommendationTier = "high"
)

// Option is one selectable answer for a question. Values across the shipped
// catalog are drawn from {0, 2, 4, 6}.
type Option struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Question is an immutable catalog entry. Catalog order defines presentation
// order and doubles as the resume cursor.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Prompt   string   `json:"prompt"`
	Weight   int      `json:"weight"`
	Options  []Option `json:"options"`
}

// MaxValue returns the highest option value for the question.
func (q Question) MaxValue() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

// Answer records the respondent's selected option for one question. At most
// one answer per question id exists in a session at any time.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Value      int      `json:"value"`
	Category   Category `json:"category"`
}

type CategoryScore struct {
	Category        Category `json:"category"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"max_score"`
	Percentage      int      `json:"percentage"`
	Recommendations []string `json:"recommendations"`
}

// AssessmentResult is produced exactly once per completed session and is
// immutable once computed.
type AssessmentResult struct {
	OverallScore      int             `json:"overall_score"`
	OverallPercentage int             `json:"overall_percentage"`
	Level             ReadinessLevel  `json:"level"`
	LevelIcon         string          `json:"level_icon"`
	LevelDescription  string          `json:"level_description"`
	QuickWinTip       string          `json:"quick_win_tip"`
	CategoryScores    []CategoryScore `json:"category_scores"`
	CompletedAt       time.Time       `json:"completed_at"`
}
