package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndevrinc/outdoor-quiz/internal/catalog"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/services"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

// OpenSession establishes or resumes a session. The attribution snapshot is
// captured only when a new session id is minted.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var req struct {
		LandingPage string `json:"landing_page"`
		Referrer    string `json:"referrer"`
	}
	// An empty body is fine; attribution fields are optional.
	_ = c.ShouldBindJSON(&req)

	view, err := h.sessionService.OpenSession(c.Request.Context(), services.OpenSessionRequest{
		SessionID:   sessionID(c),
		LandingPage: req.LandingPage,
		Referrer:    req.Referrer,
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetState returns the current session snapshot.
func (h *SessionHandler) GetState(c *gin.Context) {
	view, err := h.sessionService.GetState(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetQuestions returns the full question catalog.
func (h *SessionHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": catalog.Questions(),
		"total":     catalog.Count(),
	})
}

// StartAssessment begins or resumes answering.
func (h *SessionHandler) StartAssessment(c *gin.Context) {
	view, err := h.sessionService.StartAssessment(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// StartFresh discards stored progress and starts at question one.
func (h *SessionHandler) StartFresh(c *gin.Context) {
	view, err := h.sessionService.StartFresh(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectOption records an answer for a question.
func (h *SessionHandler) SelectOption(c *gin.Context) {
	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Value      *int   `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	view, err := h.sessionService.SelectOption(c.Request.Context(), sessionID(c), req.QuestionID, *req.Value)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// NextQuestion advances the cursor.
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	view, err := h.sessionService.NextQuestion(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PreviousQuestion moves the cursor back.
func (h *SessionHandler) PreviousQuestion(c *gin.Context) {
	view, err := h.sessionService.PreviousQuestion(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitEmailGate submits the gate contact and reveals results.
func (h *SessionHandler) SubmitEmailGate(c *gin.Context) {
	var gate models.EmailGateData
	if err := c.ShouldBindJSON(&gate); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	view, err := h.sessionService.SubmitEmailGate(c.Request.Context(), sessionID(c), gate)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// OpenLeadForm moves from results to the lead capture form.
func (h *SessionHandler) OpenLeadForm(c *gin.Context) {
	view, err := h.sessionService.OpenLeadForm(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitLead submits the lead form and ends the session.
func (h *SessionHandler) SubmitLead(c *gin.Context) {
	var lead models.LeadData
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	view, err := h.sessionService.SubmitLead(c.Request.Context(), sessionID(c), lead)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SkipLead ends the session without lead capture.
func (h *SessionHandler) SkipLead(c *gin.Context) {
	view, err := h.sessionService.SkipLead(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Restart returns the session to welcome.
func (h *SessionHandler) Restart(c *gin.Context) {
	view, err := h.sessionService.Restart(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RequestRecommendations returns the external recommendations URL.
func (h *SessionHandler) RequestRecommendations(c *gin.Context) {
	url, err := h.sessionService.RequestRecommendations(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ScheduleCall records the consultation intent.
func (h *SessionHandler) ScheduleCall(c *gin.Context) {
	if err := h.sessionService.ScheduleCall(c.Request.Context(), sessionID(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Recorded"})
}
