package services

import (
	"context"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

// RemoteStore is the capability-checked collaborator in front of the
// relational backend. Every call is a single attempt: failures are logged
// and reported as absence, never as errors, so the session flow is never
// blocked on the database.
type RemoteStore struct {
	assessments repositories.AssessmentRepository
	leads       repositories.LeadRepository
	logger      utils.Logger
}

// NewRemoteStore builds the collaborator. Pass nil repositories when the
// backend is not configured; the store then reports unavailable.
func NewRemoteStore(assessments repositories.AssessmentRepository, leads repositories.LeadRepository, logger utils.Logger) *RemoteStore {
	return &RemoteStore{assessments: assessments, leads: leads, logger: logger}
}

// Available reports whether the relational backend is configured. It never
// fails.
func (r *RemoteStore) Available() bool {
	return r != nil && r.assessments != nil && r.leads != nil
}

// SaveAssessment writes the completed assessment with all nested rows and
// returns the server-issued id, or nil when unavailable or on failure.
func (r *RemoteStore) SaveAssessment(ctx context.Context, sessionID string, gate models.EmailGateData, result models.AssessmentResult, answers []models.Answer, tracking *models.TrackingData) *uint {
	if !r.Available() {
		return nil
	}

	record := buildAssessmentRecord(sessionID, gate, result, answers, tracking)
	if err := r.assessments.Save(ctx, record); err != nil {
		r.logger.Warn("remote assessment save failed, continuing with local data only",
			"session_id", sessionID, "error", err)
		return nil
	}

	r.logger.Info("assessment saved remotely", "session_id", sessionID, "assessment_id", record.ID)
	id := record.ID
	return &id
}

// SaveLead writes the lead with its challenge rows. Requires the assessment
// id issued by SaveAssessment; without one there is nothing to attach to.
func (r *RemoteStore) SaveLead(ctx context.Context, assessmentID *uint, lead models.LeadData) {
	if !r.Available() || assessmentID == nil {
		return
	}

	record := buildLeadRecord(*assessmentID, lead)
	if err := r.leads.Save(ctx, record); err != nil {
		r.logger.Warn("remote lead save failed, continuing with local data only",
			"assessment_id", *assessmentID, "error", err)
		return
	}

	r.logger.Info("lead saved remotely", "assessment_id", *assessmentID, "lead_id", record.ID)
}

func buildAssessmentRecord(sessionID string, gate models.EmailGateData, result models.AssessmentResult, answers []models.Answer, tracking *models.TrackingData) *models.AssessmentRecord {
	record := &models.AssessmentRecord{
		SessionID:         sessionID,
		Email:             gate.Email,
		Website:           gate.Website,
		OverallScore:      result.OverallScore,
		OverallPercentage: result.OverallPercentage,
		Level:             result.Level,
		LevelIcon:         result.LevelIcon,
		LevelDescription:  result.LevelDescription,
		QuickWinTip:       result.QuickWinTip,
		CompletedAt:       result.CompletedAt,
	}

	for _, a := range answers {
		record.Answers = append(record.Answers, models.AnswerRecord{
			QuestionID: a.QuestionID,
			Category:   a.Category,
			Value:      a.Value,
		})
	}

	for _, cs := range result.CategoryScores {
		scoreRecord := models.CategoryScoreRecord{
			Category:   cs.Category,
			Score:      cs.Score,
			MaxScore:   cs.MaxScore,
			Percentage: cs.Percentage,
		}
		for i, rec := range cs.Recommendations {
			scoreRecord.Recommendations = append(scoreRecord.Recommendations, models.RecommendationRecord{
				Recommendation: rec,
				PriorityOrder:  i + 1,
			})
		}
		record.CategoryScores = append(record.CategoryScores, scoreRecord)
	}

	if tracking != nil {
		record.Tracking = append(record.Tracking, buildTrackingRecord(sessionID, *tracking))
	}

	return record
}

func buildTrackingRecord(sessionID string, tracking models.TrackingData) models.TrackingRecord {
	return models.TrackingRecord{
		SessionID:   sessionID,
		UTMSource:   optionalString(tracking.UTM.Source),
		UTMMedium:   optionalString(tracking.UTM.Medium),
		UTMCampaign: optionalString(tracking.UTM.Campaign),
		UTMTerm:     optionalString(tracking.UTM.Term),
		UTMContent:  optionalString(tracking.UTM.Content),
		Referrer:    tracking.Referrer,
		LandingPage: tracking.LandingPage,
		UserAgent:   tracking.UserAgent,
	}
}

func buildLeadRecord(assessmentID uint, lead models.LeadData) *models.LeadRecord {
	record := &models.LeadRecord{
		AssessmentID:  assessmentID,
		FirstName:     lead.FirstName,
		LastName:      lead.LastName,
		Email:         lead.Email,
		Company:       lead.Company,
		Phone:         optionalString(lead.Phone),
		BusinessType:  lead.BusinessType,
		AnnualRevenue: optionalString(lead.AnnualRevenue),
		TeamSize:      optionalString(lead.TeamSize),
	}

	for _, challenge := range lead.CurrentChallenges {
		record.Challenges = append(record.Challenges, models.LeadChallengeRecord{Challenge: challenge})
	}

	return record
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
