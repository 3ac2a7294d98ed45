package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

// ReportService exposes the reporting side of the relational backend: listing
// completed assessments, funnel aggregates, and XLSX export. Unlike the
// session flow it does surface errors; reporting has no reason to degrade
// silently.
type ReportService interface {
	ListAssessments(ctx context.Context, filters repositories.AssessmentFilters) ([]*models.AssessmentRecord, int64, error)
	GetStats(ctx context.Context) (*repositories.AssessmentStats, error)
	GetUTMSourceBreakdown(ctx context.Context) ([]repositories.SourceCount, error)
	GetEventCounts(ctx context.Context) ([]repositories.EventCount, error)
	ExportAssessmentsToExcel(ctx context.Context, filters repositories.AssessmentFilters) ([]byte, error)
}

type reportService struct {
	assessments repositories.AssessmentRepository
	events      repositories.EventRepository
	logger      utils.Logger
}

func NewReportService(assessments repositories.AssessmentRepository, events repositories.EventRepository, logger utils.Logger) ReportService {
	return &reportService{
		assessments: assessments,
		events:      events,
		logger:      logger,
	}
}

func (s *reportService) ListAssessments(ctx context.Context, filters repositories.AssessmentFilters) ([]*models.AssessmentRecord, int64, error) {
	if s.assessments == nil {
		return nil, 0, ErrReportingUnavailable
	}
	return s.assessments.List(ctx, filters)
}

func (s *reportService) GetStats(ctx context.Context) (*repositories.AssessmentStats, error) {
	if s.assessments == nil {
		return nil, ErrReportingUnavailable
	}
	return s.assessments.GetStats(ctx)
}

func (s *reportService) GetUTMSourceBreakdown(ctx context.Context) ([]repositories.SourceCount, error) {
	if s.assessments == nil {
		return nil, ErrReportingUnavailable
	}
	return s.assessments.GetUTMSourceBreakdown(ctx)
}

func (s *reportService) GetEventCounts(ctx context.Context) ([]repositories.EventCount, error) {
	if s.events == nil {
		return nil, ErrReportingUnavailable
	}
	return s.events.GetEventCounts(ctx)
}

// ExportAssessmentsToExcel writes the filtered assessments to a spreadsheet,
// one row per assessment with category scores and attribution flattened into
// columns.
func (s *reportService) ExportAssessmentsToExcel(ctx context.Context, filters repositories.AssessmentFilters) ([]byte, error) {
	assessments, _, err := s.ListAssessments(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Assessments"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Session ID", "Email", "Website", "Overall Score", "Percentage", "Level"}
	for _, category := range models.AllCategories() {
		headers = append(headers, string(category))
	}
	headers = append(headers, "UTM Source", "UTM Campaign", "Has Lead", "Completed At")

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, assessment := range assessments {
		row := assessmentToExportRow(assessment)
		for colIndex, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("assessments exported", "count", len(assessments))
	return buf.Bytes(), nil
}

func assessmentToExportRow(assessment *models.AssessmentRecord) []any {
	scoreByCategory := make(map[models.Category]int, len(assessment.CategoryScores))
	for _, cs := range assessment.CategoryScores {
		scoreByCategory[cs.Category] = cs.Score
	}

	utmSource, utmCampaign := "", ""
	if len(assessment.Tracking) > 0 {
		t := assessment.Tracking[0]
		if t.UTMSource != nil {
			utmSource = *t.UTMSource
		}
		if t.UTMCampaign != nil {
			utmCampaign = *t.UTMCampaign
		}
	}

	hasLead := "no"
	if len(assessment.Leads) > 0 {
		hasLead = "yes"
	}

	row := []any{
		assessment.ID,
		assessment.SessionID,
		assessment.Email,
		assessment.Website,
		assessment.OverallScore,
		assessment.OverallPercentage,
		string(assessment.Level),
	}
	for _, category := range models.AllCategories() {
		row = append(row, scoreByCategory[category])
	}
	return append(row, utmSource, utmCampaign, hasLead, assessment.CompletedAt.Format(time.RFC3339))
}
