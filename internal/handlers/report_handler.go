package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ndevrinc/outdoor-quiz/internal/analytics"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/report"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
	"github.com/ndevrinc/outdoor-quiz/internal/services"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	sessionService services.SessionService
	reportService  services.ReportService
	tracker        *analytics.Tracker
}

func NewReportHandler(
	sessionService services.SessionService,
	reportService services.ReportService,
	tracker *analytics.Tracker,
	logger utils.Logger,
) *ReportHandler {
	return &ReportHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
		reportService:  reportService,
		tracker:        tracker,
	}
}

// DownloadReport renders the printable results document for the session.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	id := sessionID(c)
	view, err := h.sessionService.GetState(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if view.Result == nil || view.EmailGate == nil {
		h.handleServiceError(c, services.ErrResultUnavailable)
		return
	}

	document, err := report.Render(*view.Result, *view.EmailGate)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.tracker.Track(c.Request.Context(), id, analytics.EventReportDownloaded, map[string]any{
		"level": string(view.Result.Level),
	}, view.AssessmentID)

	c.Header("Content-Disposition", `inline; filename="assessment-results.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", document)
}

// ListAssessments lists completed assessments with filters.
func (h *ReportHandler) ListAssessments(c *gin.Context) {
	filters := parseAssessmentFilters(c)

	assessments, total, err := h.reportService.ListAssessments(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": assessments,
		"total":       total,
	})
}

// GetStats returns funnel aggregates.
func (h *ReportHandler) GetStats(c *gin.Context) {
	stats, err := h.reportService.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetUTMSources returns the attribution source breakdown.
func (h *ReportHandler) GetUTMSources(c *gin.Context) {
	breakdown, err := h.reportService.GetUTMSourceBreakdown(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sources": breakdown})
}

// GetEventCounts returns event name counts.
func (h *ReportHandler) GetEventCounts(c *gin.Context) {
	counts, err := h.reportService.GetEventCounts(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": counts})
}

// ExportAssessments streams the filtered assessments as a spreadsheet.
func (h *ReportHandler) ExportAssessments(c *gin.Context) {
	filters := parseAssessmentFilters(c)

	data, err := h.reportService.ExportAssessmentsToExcel(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assessments.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseAssessmentFilters(c *gin.Context) repositories.AssessmentFilters {
	filters := repositories.AssessmentFilters{
		Level:     models.ReadinessLevel(c.Query("level")),
		UTMSource: c.Query("utm_source"),
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filters.CompletedFrom = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filters.CompletedTo = &t
		}
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	return filters
}
