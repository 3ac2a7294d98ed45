package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ndevrinc/outdoor-quiz/internal/errors"
	"github.com/ndevrinc/outdoor-quiz/internal/services"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging and error mapping for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// sessionID extracts the caller's session identifier from the request.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return c.Query("session_id")
}

// handleServiceError maps service errors to HTTP responses. Validation
// failures carry the field -> message map the forms render inline.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
			Fields:  ve.Fields(),
			Details: ve,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Session not found"})
	case errors.Is(err, services.ErrInvalidPhase):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Action not allowed in current phase"})
	case errors.Is(err, services.ErrUnknownQuestion):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Question not found"})
	case errors.Is(err, services.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Value is not an option for this question"})
	case errors.Is(err, services.ErrAtFirstQuestion):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Already at the first question"})
	case errors.Is(err, services.ErrAnswerRequired):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Answer the current question first"})
	case errors.Is(err, services.ErrResultUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "No result computed for this session"})
	case errors.Is(err, services.ErrReportingUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Reporting requires the relational backend"})
	default:
		h.logger.LogError(err, "unhandled service error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "outdoor-quiz",
	})
}
