// Package scoring turns a set of weighted answers into the readiness result:
// per-category scores, an overall score, and the derived level with its
// recommendations. Calculate is a pure transform over its input; the only
// non-deterministic field in the output is CompletedAt.
package scoring

import (
	"math"
	"time"

	"github.com/ndevrinc/outdoor-quiz/internal/catalog"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

type levelInfo struct {
	minScore    int
	level       models.ReadinessLevel
	icon        string
	description string
	quickWinTip string
}

// Level bands on the overall score, evaluated highest-first with inclusive
// lower bounds: 45-60, 30-44, 18-29, 0-17.
var levelTable = []levelInfo{
	{
		minScore:    45,
		level:       models.LevelSummitReady,
		icon:        "🏔️",
		description: "Your platform is adventure-grade ready! You're operating at the peak of adventure commerce capability.",
		quickWinTip: "Focus on advanced personalization and AI-powered product recommendations to push conversion rates even higher.",
	},
	{
		minScore:    30,
		level:       models.LevelBaseCampStrong,
		icon:        "🏕️",
		description: "Solid foundation, ready for the next ascent. Your platform handles basic requirements well but has opportunities for significant improvement.",
		quickWinTip: "Implement advanced caching and CDN optimization to improve performance during traffic spikes by 40%+.",
	},
	{
		minScore:    18,
		level:       models.LevelTrailReady,
		icon:        "🥾",
		description: "Good start, but the summit requires more preparation. Your platform covers the essentials but struggles with advanced outdoor commerce requirements.",
		quickWinTip: "Prioritize mobile optimization and basic content workflow improvements for immediate impact.",
	},
	{
		minScore:    0,
		level:       models.LevelBasecampBasics,
		icon:        "⛺",
		description: "Time for a platform upgrade expedition. Your current platform isn't equipped for the demands of modern adventure commerce.",
		quickWinTip: "Start with a comprehensive platform audit to identify the most critical issues blocking growth.",
	},
}

func levelForScore(score int) levelInfo {
	for _, info := range levelTable {
		if score >= info.minScore {
			return info
		}
	}
	return levelTable[len(levelTable)-1]
}

// LevelForScore returns the readiness level band for an overall score.
func LevelForScore(score int) models.ReadinessLevel {
	return levelForScore(score).level
}

func roundPercentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// Calculate produces the assessment result for the given answers. It is total
// over any answer list, including empty or partial ones, does not mutate its
// input, and is independent of answer order: sums are grouped by category,
// not accumulated in list order.
func Calculate(answers []models.Answer) models.AssessmentResult {
	byCategory := make(map[models.Category]int)
	for _, a := range answers {
		byCategory[a.Category] += a.Value
	}

	var categoryScores []models.CategoryScore
	overallScore := 0
	for _, category := range catalog.Categories() {
		score := byCategory[category]
		maxScore := catalog.CountByCategory(category) * catalog.MaxOptionValue
		categoryScores = append(categoryScores, models.CategoryScore{
			Category:        category,
			Score:           score,
			MaxScore:        maxScore,
			Percentage:      roundPercentage(score, maxScore),
			Recommendations: RecommendationsFor(category, score, maxScore),
		})
		overallScore += score
	}

	info := levelForScore(overallScore)

	return models.AssessmentResult{
		OverallScore:      overallScore,
		OverallPercentage: roundPercentage(overallScore, catalog.MaxOverallScore()),
		Level:             info.level,
		LevelIcon:         info.icon,
		LevelDescription:  info.description,
		QuickWinTip:       info.quickWinTip,
		CategoryScores:    categoryScores,
		CompletedAt:       time.Now(),
	}
}
