package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

func sampleResult() models.AssessmentResult {
	return models.AssessmentResult{
		OverallScore:      42,
		OverallPercentage: 70,
		Level:             models.LevelBaseCampStrong,
		LevelIcon:         "🏕️",
		LevelDescription:  "Solid foundation, ready for the next ascent.",
		QuickWinTip:       "Implement advanced caching.",
		CategoryScores: []models.CategoryScore{
			{
				Category:        models.CategoryAudienceExperience,
				Score:           12,
				MaxScore:        18,
				Percentage:      67,
				Recommendations: []string{"Optimize mobile checkout"},
			},
		},
		CompletedAt: time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	document, err := Render(sampleResult(), models.EmailGateData{
		Email:   "ops@summitgear.com",
		Website: "summitgear.com",
	})
	require.NoError(t, err)

	html := string(document)
	assert.Contains(t, html, "summitgear.com")
	assert.Contains(t, html, "ops@summitgear.com")
	assert.Contains(t, html, "42/60")
	assert.Contains(t, html, "Base Camp Strong")
	assert.Contains(t, html, "🏕️")
	assert.Contains(t, html, "Implement advanced caching.")
	assert.Contains(t, html, "Audience Experience")
	assert.Contains(t, html, "12/18")
	assert.Contains(t, html, "Optimize mobile checkout")
	assert.Contains(t, html, "August 14, 2025")
	assert.Contains(t, html, "⚡ Performance &amp; Scale Focus")
}

func TestRender_EscapesUserInput(t *testing.T) {
	document, err := Render(sampleResult(), models.EmailGateData{
		Email:   "<script>alert(1)</script>",
		Website: "summitgear.com",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(document), "<script>alert(1)</script>")
}

func TestRender_ActionPlanPerLevel(t *testing.T) {
	result := sampleResult()
	result.Level = models.LevelBasecampBasics

	document, err := Render(result, models.EmailGateData{Email: "a@b.com", Website: "b.com"})
	require.NoError(t, err)
	assert.Contains(t, string(document), "🚀 Platform Transformation Focus")
}
