package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ndevrinc/outdoor-quiz/internal/analytics"
	"github.com/ndevrinc/outdoor-quiz/internal/services"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

type HandlerManager struct {
	sessionHandler *SessionHandler
	reportHandler  *ReportHandler
}

func NewHandlerManager(
	sessionService services.SessionService,
	reportService services.ReportService,
	tracker *analytics.Tracker,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		sessionHandler: NewSessionHandler(sessionService, logger),
		reportHandler:  NewReportHandler(sessionService, reportService, tracker, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Session flow routes
		sessions := v1.Group("/session")
		{
			sessions.POST("", hm.sessionHandler.OpenSession)
			sessions.GET("", hm.sessionHandler.GetState)
			sessions.POST("/start", hm.sessionHandler.StartAssessment)
			sessions.POST("/start-fresh", hm.sessionHandler.StartFresh)
			sessions.POST("/answer", hm.sessionHandler.SelectOption)
			sessions.POST("/next", hm.sessionHandler.NextQuestion)
			sessions.POST("/previous", hm.sessionHandler.PreviousQuestion)
			sessions.POST("/email-gate", hm.sessionHandler.SubmitEmailGate)
			sessions.POST("/lead-form", hm.sessionHandler.OpenLeadForm)
			sessions.POST("/lead", hm.sessionHandler.SubmitLead)
			sessions.POST("/lead/skip", hm.sessionHandler.SkipLead)
			sessions.POST("/restart", hm.sessionHandler.Restart)
			sessions.GET("/recommendations", hm.sessionHandler.RequestRecommendations)
			sessions.POST("/schedule-call", hm.sessionHandler.ScheduleCall)
			sessions.GET("/report", hm.reportHandler.DownloadReport)
		}

		// Catalog routes
		v1.GET("/questions", hm.sessionHandler.GetQuestions)

		// Reporting routes
		reports := v1.Group("/reports")
		{
			reports.GET("/assessments", hm.reportHandler.ListAssessments)
			reports.GET("/assessments/export", hm.reportHandler.ExportAssessments)
			reports.GET("/stats", hm.reportHandler.GetStats)
			reports.GET("/utm-sources", hm.reportHandler.GetUTMSources)
			reports.GET("/events", hm.reportHandler.GetEventCounts)
		}
	}
}
