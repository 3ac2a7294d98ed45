// Package storage is the durable write-through layer for session artifacts.
// Values are JSON records under fixed logical keys, namespaced by session id.
// Writes and reads are best-effort: failures are logged and swallowed, never
// surfaced to the caller, so the in-memory session stays authoritative even
// when durability is lost.
package storage

import (
	"context"
	"encoding/json"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

// KV is the raw key-value string contract the store runs on.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

const keyPrefix = "adventure_assessment"

const (
	keyAnswers   = "answers"
	keyResult    = "results"
	keyLead      = "lead"
	keyEmailGate = "email_gate"
	keyTracking  = "tracking"
)

// Store persists session artifacts through a KV backend.
type Store struct {
	kv     KV
	logger utils.Logger
}

func NewStore(kv KV, logger utils.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

func (s *Store) key(sessionID, name string) string {
	return keyPrefix + ":" + sessionID + ":" + name
}

func (s *Store) put(ctx context.Context, sessionID, name string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode session artifact", "key", name, "error", err)
		return
	}
	if err := s.kv.Set(ctx, s.key(sessionID, name), string(data)); err != nil {
		s.logger.Error("failed to save session artifact", "key", name, "session_id", sessionID, "error", err)
	}
}

func (s *Store) get(ctx context.Context, sessionID, name string, dest any) bool {
	raw, ok, err := s.kv.Get(ctx, s.key(sessionID, name))
	if err != nil {
		s.logger.Error("failed to load session artifact", "key", name, "session_id", sessionID, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.Error("failed to decode session artifact", "key", name, "session_id", sessionID, "error", err)
		return false
	}
	return true
}

func (s *Store) SaveAnswers(ctx context.Context, sessionID string, answers []models.Answer) {
	s.put(ctx, sessionID, keyAnswers, answers)
}

func (s *Store) LoadAnswers(ctx context.Context, sessionID string) []models.Answer {
	var answers []models.Answer
	if !s.get(ctx, sessionID, keyAnswers, &answers) {
		return nil
	}
	return answers
}

func (s *Store) SaveResult(ctx context.Context, sessionID string, result models.AssessmentResult) {
	s.put(ctx, sessionID, keyResult, result)
}

func (s *Store) LoadResult(ctx context.Context, sessionID string) *models.AssessmentResult {
	var result models.AssessmentResult
	if !s.get(ctx, sessionID, keyResult, &result) {
		return nil
	}
	return &result
}

func (s *Store) SaveEmailGate(ctx context.Context, sessionID string, gate models.EmailGateData) {
	s.put(ctx, sessionID, keyEmailGate, gate)
}

func (s *Store) LoadEmailGate(ctx context.Context, sessionID string) *models.EmailGateData {
	var gate models.EmailGateData
	if !s.get(ctx, sessionID, keyEmailGate, &gate) {
		return nil
	}
	return &gate
}

func (s *Store) SaveLead(ctx context.Context, sessionID string, lead models.LeadData) {
	s.put(ctx, sessionID, keyLead, lead)
}

func (s *Store) LoadLead(ctx context.Context, sessionID string) *models.LeadData {
	var lead models.LeadData
	if !s.get(ctx, sessionID, keyLead, &lead) {
		return nil
	}
	return &lead
}

func (s *Store) SaveTracking(ctx context.Context, sessionID string, tracking models.TrackingData) {
	s.put(ctx, sessionID, keyTracking, tracking)
}

func (s *Store) LoadTracking(ctx context.Context, sessionID string) *models.TrackingData {
	var tracking models.TrackingData
	if !s.get(ctx, sessionID, keyTracking, &tracking) {
		return nil
	}
	return &tracking
}

// ClearAssessment removes the per-run artifacts (answers, result, gate, lead)
// while leaving the tracking snapshot intact: attribution identity outlives a
// single assessment attempt.
func (s *Store) ClearAssessment(ctx context.Context, sessionID string) {
	keys := []string{
		s.key(sessionID, keyAnswers),
		s.key(sessionID, keyResult),
		s.key(sessionID, keyLead),
		s.key(sessionID, keyEmailGate),
	}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		s.logger.Error("failed to clear assessment data", "session_id", sessionID, "error", err)
	}
}
