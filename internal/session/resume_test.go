package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

func storedAnswers(n int) []models.Answer {
	var answers []models.Answer
	for i := 0; i < n; i++ {
		answers = append(answers, models.Answer{
			QuestionID: string(rune('a' + i)),
			Value:      4,
			Category:   models.CategoryAudienceExperience,
		})
	}
	return answers
}

func TestResume_NothingStored(t *testing.T) {
	s := Resume(nil, nil, nil, catalogLen)
	assert.Equal(t, PhaseWelcome, s.Phase)
}

func TestResume_PartialAnswers(t *testing.T) {
	s := Resume(storedAnswers(4), nil, nil, catalogLen)

	assert.Equal(t, PhaseAssessment, s.Phase)
	assert.Equal(t, 4, s.Position)
	assert.Len(t, s.Answers, 4)
}

func TestResume_AllAnswered(t *testing.T) {
	s := Resume(storedAnswers(catalogLen), nil, nil, catalogLen)
	assert.Equal(t, PhaseEmailGate, s.Phase)
}

func TestResume_ResultAndGateStored(t *testing.T) {
	result := &models.AssessmentResult{OverallScore: 48, Level: models.LevelSummitReady}
	gate := &models.EmailGateData{Email: "ops@summitgear.com", Website: "summitgear.com"}

	s := Resume(storedAnswers(catalogLen), result, gate, catalogLen)

	assert.Equal(t, PhaseResults, s.Phase)
	require.NotNil(t, s.Result)
	assert.Equal(t, 48, s.Result.OverallScore)
	require.NotNil(t, s.EmailGate)
}

func TestResume_ResultWithoutGateDoesNotReveal(t *testing.T) {
	result := &models.AssessmentResult{OverallScore: 48}

	s := Resume(storedAnswers(catalogLen), result, nil, catalogLen)
	assert.Equal(t, PhaseEmailGate, s.Phase)
}

func TestResume_OneAnswer(t *testing.T) {
	s := Resume(storedAnswers(1), nil, nil, catalogLen)
	assert.Equal(t, PhaseAssessment, s.Phase)
	assert.Equal(t, 1, s.Position)
}
