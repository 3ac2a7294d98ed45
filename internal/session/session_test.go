package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

const catalogLen = 10

func answer(id string, value int) models.Answer {
	return models.Answer{QuestionID: id, Value: value, Category: models.CategoryAudienceExperience}
}

func stateInAssessment(t *testing.T) State {
	t.Helper()
	return Start(New())
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, PhaseWelcome, s.Phase)
	assert.Equal(t, 0, s.Position)
	assert.Empty(t, s.Answers)
}

func TestStart_ResetsEverything(t *testing.T) {
	s := New()
	s.Answers = []models.Answer{answer("audience-1", 4)}
	result := models.AssessmentResult{OverallScore: 40}
	s.Result = &result

	s = Start(s)

	assert.Equal(t, PhaseAssessment, s.Phase)
	assert.Equal(t, 0, s.Position)
	assert.Empty(t, s.Answers)
	assert.Nil(t, s.Result)
	assert.Nil(t, s.EmailGate)
	assert.Nil(t, s.Lead)
	assert.Nil(t, s.AssessmentID)
}

func TestRecordAnswer_ReplacesOnResubmit(t *testing.T) {
	s := stateInAssessment(t)

	s, err := RecordAnswer(s, answer("audience-1", 2))
	require.NoError(t, err)
	s, err = RecordAnswer(s, answer("audience-2", 4))
	require.NoError(t, err)
	s, err = RecordAnswer(s, answer("audience-1", 6))
	require.NoError(t, err)

	require.Len(t, s.Answers, 2)
	got, ok := s.AnswerFor("audience-1")
	require.True(t, ok)
	assert.Equal(t, 6, got.Value)
}

func TestRecordAnswer_WrongPhase(t *testing.T) {
	_, err := RecordAnswer(New(), answer("audience-1", 2))
	assert.ErrorIs(t, err, ErrNotInPhase)
}

func TestAdvance_WithinCatalog(t *testing.T) {
	s := stateInAssessment(t)
	s, _ = RecordAnswer(s, answer("audience-1", 4))

	s, err := Advance(s, "audience-1", catalogLen)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position)
	assert.Equal(t, PhaseAssessment, s.Phase)
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	s := stateInAssessment(t)

	_, err := Advance(s, "audience-1", catalogLen)
	assert.ErrorIs(t, err, ErrIncompleteAnswer)

	s, _ = RecordAnswer(s, answer("audience-2", 4))
	_, err = Advance(s, "audience-1", catalogLen)
	assert.ErrorIs(t, err, ErrIncompleteAnswer)
}

func TestAdvance_LastQuestionEntersEmailGate(t *testing.T) {
	s := stateInAssessment(t)
	s.Position = catalogLen - 1
	s, _ = RecordAnswer(s, answer("business-3", 6))

	s, err := Advance(s, "business-3", catalogLen)
	require.NoError(t, err)
	assert.Equal(t, PhaseEmailGate, s.Phase)
	assert.Equal(t, catalogLen-1, s.Position)
}

func TestRetreat(t *testing.T) {
	s := stateInAssessment(t)
	s.Position = 3

	s, err := Retreat(s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Position)
}

func TestRetreat_AtFirstQuestion(t *testing.T) {
	s := stateInAssessment(t)
	_, err := Retreat(s)
	assert.ErrorIs(t, err, ErrAtFirstQuestion)
}

func TestRetreat_KeepsAnswers(t *testing.T) {
	s := stateInAssessment(t)
	s, _ = RecordAnswer(s, answer("audience-1", 4))
	s.Position = 1

	s, err := Retreat(s)
	require.NoError(t, err)
	assert.Len(t, s.Answers, 1)
}

func TestRevealResults(t *testing.T) {
	s := stateInAssessment(t)
	s.Phase = PhaseEmailGate
	gate := models.EmailGateData{Email: "ops@summitgear.com", Website: "summitgear.com"}
	result := models.AssessmentResult{OverallScore: 42, Level: models.LevelBaseCampStrong}

	s, err := RevealResults(s, gate, result)
	require.NoError(t, err)
	assert.Equal(t, PhaseResults, s.Phase)
	require.NotNil(t, s.Result)
	assert.Equal(t, 42, s.Result.OverallScore)
	require.NotNil(t, s.EmailGate)
	assert.Equal(t, "ops@summitgear.com", s.EmailGate.Email)
}

func TestRevealResults_WrongPhase(t *testing.T) {
	_, err := RevealResults(New(), models.EmailGateData{}, models.AssessmentResult{})
	assert.ErrorIs(t, err, ErrNotInPhase)
}

func TestLeadFlow(t *testing.T) {
	s := State{Phase: PhaseResults}

	s, err := OpenLeadForm(s)
	require.NoError(t, err)
	assert.Equal(t, PhaseLeadForm, s.Phase)

	lead := models.LeadData{FirstName: "Avery", LastName: "Stone", Email: "avery@trailworks.com", Company: "Trailworks", BusinessType: "retailer"}
	s, err = CompleteLead(s, lead)
	require.NoError(t, err)
	assert.Equal(t, PhaseThankYou, s.Phase)
	require.NotNil(t, s.Lead)
	assert.Equal(t, "Trailworks", s.Lead.Company)
}

func TestSkipLead(t *testing.T) {
	s := State{Phase: PhaseLeadForm}

	s, err := SkipLead(s)
	require.NoError(t, err)
	assert.Equal(t, PhaseThankYou, s.Phase)
	assert.Nil(t, s.Lead)
}

func TestRestart_DropsArtifacts(t *testing.T) {
	result := models.AssessmentResult{OverallScore: 50}
	id := uint(7)
	s := State{
		Phase:        PhaseResults,
		Answers:      []models.Answer{answer("audience-1", 6)},
		Result:       &result,
		AssessmentID: &id,
	}

	s = Restart(s)
	assert.Equal(t, PhaseWelcome, s.Phase)
	assert.Empty(t, s.Answers)
	assert.Nil(t, s.Result)
	assert.Nil(t, s.AssessmentID)
}

func TestIsComplete(t *testing.T) {
	s := stateInAssessment(t)
	assert.False(t, s.IsComplete(catalogLen))

	for i := 0; i < catalogLen; i++ {
		s, _ = RecordAnswer(s, answer(string(rune('a'+i)), 2))
	}
	assert.True(t, s.IsComplete(catalogLen))
}

func TestWithAssessmentID(t *testing.T) {
	s := WithAssessmentID(New(), 42)
	require.NotNil(t, s.AssessmentID)
	assert.Equal(t, uint(42), *s.AssessmentID)
}
