// Package session implements the respondent's progression through the
// assessment as an explicit state machine. State is an immutable-by-copy
// context value and every transition is a pure (state, action) -> state
// reducer; side effects (storage, CRM, analytics) live in the service layer.
package session

import (
	"errors"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

type Phase string

const (
	PhaseWelcome    Phase = "welcome"
	PhaseAssessment Phase = "assessment"
	PhaseEmailGate  Phase = "email-gate"
	PhaseResults    Phase = "results"
	PhaseLeadForm   Phase = "lead-form"
	PhaseThankYou   Phase = "thank-you"
)

var (
	ErrNotInPhase       = errors.New("action not allowed in current phase")
	ErrAtFirstQuestion  = errors.New("already at the first question")
	ErrUnknownQuestion  = errors.New("question not in catalog")
	ErrIncompleteAnswer = errors.New("current question not answered")
)

// State is the full session context: current phase, question cursor, the
// answer store and the artifacts produced along the way. The zero value is
// not valid; use New.
type State struct {
	Phase        Phase                    `json:"phase"`
	Position     int                      `json:"position"`
	Answers      []models.Answer          `json:"answers"`
	Result       *models.AssessmentResult `json:"result,omitempty"`
	EmailGate    *models.EmailGateData    `json:"email_gate,omitempty"`
	Lead         *models.LeadData         `json:"lead,omitempty"`
	AssessmentID *uint                    `json:"assessment_id,omitempty"`
}

// New returns a fresh session at the welcome phase.
func New() State {
	return State{Phase: PhaseWelcome}
}

// AnswerFor returns the recorded answer for a question id, if any.
func (s State) AnswerFor(questionID string) (models.Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return models.Answer{}, false
}

// IsComplete reports whether every catalog question has an answer.
func (s State) IsComplete(catalogLen int) bool {
	return len(s.Answers) == catalogLen
}

// Start begins a fresh assessment run: position zero, answer store emptied.
func Start(s State) State {
	s.Phase = PhaseAssessment
	s.Position = 0
	s.Answers = nil
	s.Result = nil
	s.EmailGate = nil
	s.Lead = nil
	s.AssessmentID = nil
	return s
}

// RecordAnswer stores the answer, replacing any prior answer for the same
// question id. Option values are trusted; the rendering layer only emits
// values from the question's option set.
func RecordAnswer(s State, answer models.Answer) (State, error) {
	if s.Phase != PhaseAssessment {
		return s, ErrNotInPhase
	}
	updated := make([]models.Answer, 0, len(s.Answers)+1)
	for _, a := range s.Answers {
		if a.QuestionID != answer.QuestionID {
			updated = append(updated, a)
		}
	}
	s.Answers = append(updated, answer)
	return s, nil
}

// Advance moves to the next question, or to the email gate after the last
// one. The current question must have an answer.
func Advance(s State, currentQuestionID string, catalogLen int) (State, error) {
	if s.Phase != PhaseAssessment {
		return s, ErrNotInPhase
	}
	if _, ok := s.AnswerFor(currentQuestionID); !ok {
		return s, ErrIncompleteAnswer
	}
	if s.Position < catalogLen-1 {
		s.Position++
		return s, nil
	}
	s.Phase = PhaseEmailGate
	return s, nil
}

// Retreat moves back one question without touching answers.
func Retreat(s State) (State, error) {
	if s.Phase != PhaseAssessment {
		return s, ErrNotInPhase
	}
	if s.Position == 0 {
		return s, ErrAtFirstQuestion
	}
	s.Position--
	return s, nil
}

// RevealResults applies the gate submission: the computed result and gate
// data are attached and the session moves to results. The caller computes
// the result and performs all persistence before invoking this.
func RevealResults(s State, gate models.EmailGateData, result models.AssessmentResult) (State, error) {
	if s.Phase != PhaseEmailGate {
		return s, ErrNotInPhase
	}
	s.Phase = PhaseResults
	s.EmailGate = &gate
	s.Result = &result
	return s, nil
}

// OpenLeadForm moves from results to the lead capture form.
func OpenLeadForm(s State) (State, error) {
	if s.Phase != PhaseResults {
		return s, ErrNotInPhase
	}
	s.Phase = PhaseLeadForm
	return s, nil
}

// CompleteLead records the submitted lead and ends the session.
func CompleteLead(s State, lead models.LeadData) (State, error) {
	if s.Phase != PhaseLeadForm {
		return s, ErrNotInPhase
	}
	s.Phase = PhaseThankYou
	s.Lead = &lead
	return s, nil
}

// SkipLead ends the session without lead capture.
func SkipLead(s State) (State, error) {
	if s.Phase != PhaseLeadForm {
		return s, ErrNotInPhase
	}
	s.Phase = PhaseThankYou
	return s, nil
}

// Restart returns to welcome and drops every session artifact. Cross-session
// tracking identity is not held here and survives untouched.
func Restart(s State) State {
	return New()
}

// WithAssessmentID attaches the server-issued assessment identifier obtained
// from the first remote write.
func WithAssessmentID(s State, id uint) State {
	s.AssessmentID = &id
	return s
}
