package session

import (
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

// Resume rebuilds the session state from durable artifacts, evaluated once at
// startup. The question cursor is derived from the count of stored answers,
// not from a separately stored index, so a reload always lands on the first
// unanswered question in catalog order.
//
// Rules, in priority order:
//   - stored result + gate data        -> results
//   - answer count == catalog length   -> email gate
//   - 1 <= answer count < length       -> assessment at position = count
//   - otherwise                        -> welcome
func Resume(answers []models.Answer, result *models.AssessmentResult, gate *models.EmailGateData, catalogLen int) State {
	if result != nil && gate != nil {
		return State{
			Phase:     PhaseResults,
			Answers:   answers,
			Result:    result,
			EmailGate: gate,
		}
	}
	if len(answers) == catalogLen && catalogLen > 0 {
		return State{
			Phase:   PhaseEmailGate,
			Answers: answers,
		}
	}
	if len(answers) > 0 {
		return State{
			Phase:    PhaseAssessment,
			Position: len(answers),
			Answers:  answers,
		}
	}
	return New()
}
