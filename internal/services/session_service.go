package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ndevrinc/outdoor-quiz/internal/analytics"
	"github.com/ndevrinc/outdoor-quiz/internal/catalog"
	"github.com/ndevrinc/outdoor-quiz/internal/crm"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/scoring"
	"github.com/ndevrinc/outdoor-quiz/internal/session"
	"github.com/ndevrinc/outdoor-quiz/internal/storage"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
	"github.com/ndevrinc/outdoor-quiz/internal/validator"
)

// SessionView is the client-facing snapshot of a session after an action.
type SessionView struct {
	SessionID      string                   `json:"session_id"`
	Phase          session.Phase            `json:"phase"`
	Position       int                      `json:"position"`
	TotalQuestions int                      `json:"total_questions"`
	Question       *models.Question         `json:"question,omitempty"`
	Answers        []models.Answer          `json:"answers"`
	Result         *models.AssessmentResult `json:"result,omitempty"`
	EmailGate      *models.EmailGateData    `json:"email_gate,omitempty"`
	Lead           *models.LeadData         `json:"lead,omitempty"`
	AssessmentID   *uint                    `json:"assessment_id,omitempty"`
}

// OpenSessionRequest carries the attribution inputs captured when a session
// first lands.
type OpenSessionRequest struct {
	SessionID   string
	LandingPage string
	Referrer    string
	UserAgent   string
}

// SessionService drives a respondent's session through the assessment flow.
// All side effects (durable store, database, CRM, analytics) are orchestrated
// here; the state machine itself stays pure.
type SessionService interface {
	OpenSession(ctx context.Context, req OpenSessionRequest) (*SessionView, error)
	GetState(ctx context.Context, sessionID string) (*SessionView, error)
	StartAssessment(ctx context.Context, sessionID string) (*SessionView, error)
	StartFresh(ctx context.Context, sessionID string) (*SessionView, error)
	SelectOption(ctx context.Context, sessionID, questionID string, value int) (*SessionView, error)
	NextQuestion(ctx context.Context, sessionID string) (*SessionView, error)
	PreviousQuestion(ctx context.Context, sessionID string) (*SessionView, error)
	SubmitEmailGate(ctx context.Context, sessionID string, gate models.EmailGateData) (*SessionView, error)
	OpenLeadForm(ctx context.Context, sessionID string) (*SessionView, error)
	SubmitLead(ctx context.Context, sessionID string, lead models.LeadData) (*SessionView, error)
	SkipLead(ctx context.Context, sessionID string) (*SessionView, error)
	Restart(ctx context.Context, sessionID string) (*SessionView, error)
	RequestRecommendations(ctx context.Context, sessionID string) (string, error)
	ScheduleCall(ctx context.Context, sessionID string) error
}

type sessionService struct {
	store              *storage.Store
	remote             *RemoteStore
	crmClient          crm.Client
	tracker            *analytics.Tracker
	validator          *validator.Validator
	logger             utils.Logger
	recommendationsURL string

	mu       sync.RWMutex
	sessions map[string]session.State
}

func NewSessionService(
	store *storage.Store,
	remote *RemoteStore,
	crmClient crm.Client,
	tracker *analytics.Tracker,
	v *validator.Validator,
	logger utils.Logger,
	recommendationsURL string,
) SessionService {
	return &sessionService{
		store:              store,
		remote:             remote,
		crmClient:          crmClient,
		tracker:            tracker,
		validator:          v,
		logger:             logger,
		recommendationsURL: recommendationsURL,
		sessions:           make(map[string]session.State),
	}
}

// ===== SESSION LIFECYCLE =====

// OpenSession establishes or resumes a session. A missing session id mints a
// fresh one and stamps the attribution snapshot; a known id is rehydrated
// from the durable store using the count-of-answers cursor rule.
func (s *sessionService) OpenSession(ctx context.Context, req OpenSessionRequest) (*SessionView, error) {
	sessionID := req.SessionID
	fresh := sessionID == ""
	if fresh {
		sessionID = analytics.NewSessionID()
		tracking := analytics.CaptureTrackingData(sessionID, req.LandingPage, req.Referrer, req.UserAgent)
		s.store.SaveTracking(ctx, sessionID, tracking)
		s.logger.Info("session opened", "session_id", sessionID, "utm_source", tracking.UTM.Source)
	}

	state := s.loadState(ctx, sessionID)
	s.putState(ctx, sessionID, state, false)

	s.tracker.TrackPageView(ctx, sessionID, string(state.Phase), map[string]any{
		"resumed": !fresh && state.Phase != session.PhaseWelcome,
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// GetState returns the current snapshot without side effects.
func (s *sessionService) GetState(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		state = s.loadState(ctx, sessionID)
		s.putState(ctx, sessionID, state, false)
	}
	return s.view(sessionID, state), nil
}

// StartAssessment begins (or resumes) answering. From welcome it enters the
// assessment at the resume position; stored answers survive.
func (s *sessionService) StartAssessment(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if state.Phase != session.PhaseWelcome {
		return nil, ErrInvalidPhase
	}

	resumed := len(state.Answers) > 0
	if resumed {
		state.Phase = session.PhaseAssessment
		state.Position = len(state.Answers)
		if state.Position >= catalog.Count() {
			state.Position = catalog.Count() - 1
		}
	} else {
		state = session.Start(state)
	}
	s.putState(ctx, sessionID, state, true)

	s.tracker.Track(ctx, sessionID, analytics.EventAssessmentStarted, map[string]any{
		"resumed":  resumed,
		"position": state.Position,
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// StartFresh discards any stored progress and begins at question one. The
// tracking snapshot is kept.
func (s *sessionService) StartFresh(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.store.ClearAssessment(ctx, sessionID)
	state = session.Start(session.New())
	s.putState(ctx, sessionID, state, true)

	s.tracker.Track(ctx, sessionID, analytics.EventAssessmentStartedFresh, nil, nil)

	return s.view(sessionID, state), nil
}

// Restart returns the session to welcome and drops every artifact of the
// current run.
func (s *sessionService) Restart(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.store.ClearAssessment(ctx, sessionID)
	state = session.Restart(state)
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventAssessmentRestarted, nil, nil)

	return s.view(sessionID, state), nil
}

// ===== ANSWERING =====

// SelectOption records the answer for a question, replacing any earlier
// answer for the same question, and writes the answer set through to the
// durable store.
func (s *sessionService) SelectOption(ctx context.Context, sessionID, questionID string, value int) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	question, ok := catalog.ByID(questionID)
	if !ok {
		return nil, ErrUnknownQuestion
	}
	if !hasOptionValue(question, value) {
		return nil, ErrInvalidOption
	}

	state, err := session.RecordAnswer(state, models.Answer{
		QuestionID: questionID,
		Value:      value,
		Category:   question.Category,
	})
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, true)

	s.tracker.Track(ctx, sessionID, analytics.EventQuestionAnswered, map[string]any{
		"question_id": questionID,
		"category":    string(question.Category),
		"value":       value,
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// NextQuestion advances the cursor, entering the email gate after the final
// question.
func (s *sessionService) NextQuestion(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	current := catalog.Questions()[state.Position]
	state, err := session.Advance(state, current.ID, catalog.Count())
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventQuestionNavigation, map[string]any{
		"direction": "next",
		"position":  state.Position,
		"phase":     string(state.Phase),
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// PreviousQuestion moves the cursor back one question; answers are kept.
func (s *sessionService) PreviousQuestion(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	state, err := session.Retreat(state)
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventQuestionNavigation, map[string]any{
		"direction": "previous",
		"position":  state.Position,
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// ===== GATE AND LEAD =====

// SubmitEmailGate validates the gate contact, computes the result, persists
// everything and reveals the results. The transition to results happens even
// when every external write fails; only validation blocks it.
func (s *sessionService) SubmitEmailGate(ctx context.Context, sessionID string, gate models.EmailGateData) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if state.Phase != session.PhaseEmailGate {
		return nil, ErrInvalidPhase
	}

	if err := s.validator.Validate(gate); err != nil {
		return nil, err
	}

	result := scoring.Calculate(state.Answers)

	s.store.SaveEmailGate(ctx, sessionID, gate)
	s.store.SaveResult(ctx, sessionID, result)

	tracking := s.store.LoadTracking(ctx, sessionID)
	if id := s.remote.SaveAssessment(ctx, sessionID, gate, result, state.Answers, tracking); id != nil {
		state = session.WithAssessmentID(state, *id)
	}

	s.submitGateToCRM(ctx, gate, tracking, sessionID)

	state, err := session.RevealResults(state, gate, result)
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventAssessmentCompleted, map[string]any{
		"overall_score": result.OverallScore,
		"level":         string(result.Level),
	}, state.AssessmentID)
	s.tracker.Track(ctx, sessionID, analytics.EventEmailGateSubmitted, nil, state.AssessmentID)

	s.logger.Info("assessment completed",
		"session_id", sessionID,
		"overall_score", result.OverallScore,
		"level", string(result.Level))

	return s.view(sessionID, state), nil
}

// OpenLeadForm moves from results to the lead capture form.
func (s *sessionService) OpenLeadForm(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	state, err := session.OpenLeadForm(state)
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	return s.view(sessionID, state), nil
}

// SubmitLead validates and persists the lead, pushes it to the CRM, and ends
// the session at thank-you. External failures never block the transition.
func (s *sessionService) SubmitLead(ctx context.Context, sessionID string, lead models.LeadData) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if state.Phase != session.PhaseLeadForm {
		return nil, ErrInvalidPhase
	}

	if err := s.validator.Validate(lead); err != nil {
		return nil, err
	}

	s.store.SaveLead(ctx, sessionID, lead)
	s.remote.SaveLead(ctx, state.AssessmentID, lead)

	tracking := s.store.LoadTracking(ctx, sessionID)
	s.submitLeadToCRM(ctx, lead, tracking, state.Result, sessionID)

	state, err := session.CompleteLead(state, lead)
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventLeadFormSubmitted, map[string]any{
		"business_type": lead.BusinessType,
	}, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// SkipLead ends the session without lead capture.
func (s *sessionService) SkipLead(ctx context.Context, sessionID string) (*SessionView, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	state, err := session.SkipLead(state)
	if err != nil {
		return nil, mapSessionError(err)
	}
	s.putState(ctx, sessionID, state, false)

	s.tracker.Track(ctx, sessionID, analytics.EventLeadFormSkipped, nil, state.AssessmentID)

	return s.view(sessionID, state), nil
}

// ===== RESULTS PAGE ACTIONS =====

// RequestRecommendations returns the external recommendations URL for the
// results page and records the click. The session must have a computed
// result.
func (s *sessionService) RequestRecommendations(ctx context.Context, sessionID string) (string, error) {
	state, ok := s.getState(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	if state.Result == nil {
		return "", ErrResultUnavailable
	}

	s.tracker.Track(ctx, sessionID, analytics.EventScheduleCallClicked, map[string]any{
		"destination_url": s.recommendationsURL,
		"overall_score":   state.Result.OverallScore,
		"level":           string(state.Result.Level),
	}, state.AssessmentID)

	return s.recommendationsURL, nil
}

// ScheduleCall records the consultation intent from the results page.
func (s *sessionService) ScheduleCall(ctx context.Context, sessionID string) error {
	state, ok := s.getState(sessionID)
	if !ok {
		return ErrSessionNotFound
	}

	props := map[string]any{}
	if state.Result != nil {
		props["overall_score"] = state.Result.OverallScore
		props["level"] = string(state.Result.Level)
	}
	s.tracker.Track(ctx, sessionID, analytics.EventScheduleCallClicked, props, state.AssessmentID)
	return nil
}

// ===== INTERNALS =====

func (s *sessionService) getState(sessionID string) (session.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	return state, ok
}

// loadState rehydrates a session from the durable store.
func (s *sessionService) loadState(ctx context.Context, sessionID string) session.State {
	if state, ok := s.getState(sessionID); ok {
		return state
	}

	answers := s.store.LoadAnswers(ctx, sessionID)
	result := s.store.LoadResult(ctx, sessionID)
	gate := s.store.LoadEmailGate(ctx, sessionID)
	return session.Resume(answers, result, gate, catalog.Count())
}

// putState caches the state and, when persistAnswers is set, writes the
// answer set through to the durable store.
func (s *sessionService) putState(ctx context.Context, sessionID string, state session.State, persistAnswers bool) {
	s.mu.Lock()
	s.sessions[sessionID] = state
	s.mu.Unlock()

	if persistAnswers {
		s.store.SaveAnswers(ctx, sessionID, state.Answers)
	}
}

func (s *sessionService) submitGateToCRM(ctx context.Context, gate models.EmailGateData, tracking *models.TrackingData, sessionID string) {
	if s.crmClient == nil || !s.crmClient.Available() {
		return
	}
	t := models.TrackingData{SessionID: sessionID}
	if tracking != nil {
		t = *tracking
	}
	if err := s.crmClient.SubmitEmailGate(ctx, gate, t); err != nil {
		s.logger.Warn("crm gate submission failed, continuing", "session_id", sessionID, "error", err)
		return
	}
	s.logger.Info("gate contact submitted to crm", "session_id", sessionID)
}

func (s *sessionService) submitLeadToCRM(ctx context.Context, lead models.LeadData, tracking *models.TrackingData, result *models.AssessmentResult, sessionID string) {
	if s.crmClient == nil || !s.crmClient.Available() {
		return
	}
	t := models.TrackingData{SessionID: sessionID}
	if tracking != nil {
		t = *tracking
	}
	if err := s.crmClient.SubmitLead(ctx, lead, t, result); err != nil {
		s.logger.Warn("crm lead submission failed, continuing", "session_id", sessionID, "error", err)
		return
	}
	s.logger.Info("lead submitted to crm", "session_id", sessionID)
}

func (s *sessionService) view(sessionID string, state session.State) *SessionView {
	view := &SessionView{
		SessionID:      sessionID,
		Phase:          state.Phase,
		Position:       state.Position,
		TotalQuestions: catalog.Count(),
		Answers:        state.Answers,
		Result:         state.Result,
		EmailGate:      state.EmailGate,
		Lead:           state.Lead,
		AssessmentID:   state.AssessmentID,
	}
	if state.Phase == session.PhaseAssessment {
		questions := catalog.Questions()
		if state.Position >= 0 && state.Position < len(questions) {
			q := questions[state.Position]
			view.Question = &q
		}
	}
	return view
}

func hasOptionValue(q models.Question, value int) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func mapSessionError(err error) error {
	switch err {
	case session.ErrNotInPhase:
		return ErrInvalidPhase
	case session.ErrAtFirstQuestion:
		return ErrAtFirstQuestion
	case session.ErrUnknownQuestion:
		return ErrUnknownQuestion
	case session.ErrIncompleteAnswer:
		return ErrAnswerRequired
	default:
		return fmt.Errorf("session transition failed: %w", err)
	}
}
