package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/repositories"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

func TestReportService_Unavailable(t *testing.T) {
	svc := NewReportService(nil, nil, utils.NewDevelopmentLogger())

	_, _, err := svc.ListAssessments(context.Background(), repositories.AssessmentFilters{})
	assert.ErrorIs(t, err, ErrReportingUnavailable)

	_, err = svc.GetStats(context.Background())
	assert.ErrorIs(t, err, ErrReportingUnavailable)

	_, err = svc.GetEventCounts(context.Background())
	assert.ErrorIs(t, err, ErrReportingUnavailable)
}

func TestExportAssessmentsToExcel(t *testing.T) {
	repo := &MockAssessmentRepository{}
	utmSource := "newsletter"
	records := []*models.AssessmentRecord{
		{
			ID:                1,
			SessionID:         "sess-1",
			Email:             "ops@summitgear.com",
			Website:           "summitgear.com",
			OverallScore:      42,
			OverallPercentage: 70,
			Level:             models.LevelBaseCampStrong,
			CompletedAt:       time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC),
			CategoryScores: []models.CategoryScoreRecord{
				{Category: models.CategoryAudienceExperience, Score: 14},
				{Category: models.CategoryBusinessImpact, Score: 10},
			},
			Tracking: []models.TrackingRecord{{UTMSource: &utmSource}},
			Leads:    []models.LeadRecord{{FirstName: "Avery"}},
		},
	}
	repo.On("List", mock.Anything, mock.Anything).Return(records, int64(1), nil)

	svc := NewReportService(repo, nil, utils.NewDevelopmentLogger())
	data, err := svc.ExportAssessmentsToExcel(context.Background(), repositories.AssessmentFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Assessments")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "sess-1", rows[1][1])
	assert.Equal(t, "ops@summitgear.com", rows[1][2])
	assert.Equal(t, "42", rows[1][4])
	assert.Equal(t, "Base Camp Strong", rows[1][6])
	assert.Equal(t, "newsletter", rows[1][11])
	assert.Equal(t, "yes", rows[1][13])
}
