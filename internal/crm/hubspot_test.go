package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

func TestAvailable(t *testing.T) {
	assert.True(t, NewHubSpotClient("2143432", "form-guid").Available())
	assert.False(t, NewHubSpotClient("", "form-guid").Available())
	assert.False(t, NewHubSpotClient("2143432", "").Available())
	assert.False(t, NewHubSpotClient("", "").Available())
}

func TestSubmitEmailGate(t *testing.T) {
	var captured formSubmission
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHubSpotClientWithBaseURL("2143432", "form-guid", server.URL)

	gate := models.EmailGateData{Email: "ops@summitgear.com", Website: "summitgear.com"}
	tracking := models.TrackingData{
		UTM:         models.UTMParams{Source: "newsletter", Campaign: "spring-launch"},
		LandingPage: "https://example.com/assessment?utm_source=newsletter",
		SessionID:   "sess-1",
	}

	err := client.SubmitEmailGate(context.Background(), gate, tracking)
	require.NoError(t, err)

	assert.Equal(t, "/submissions/v3/integration/submit/2143432/form-guid", path)

	fields := map[string]string{}
	for _, f := range captured.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "ops@summitgear.com", fields["email"])
	assert.Equal(t, "summitgear.com", fields["website"])
	assert.Equal(t, "newsletter", fields["utm_source"])
	assert.Equal(t, "spring-launch", fields["utm_campaign"])
	assert.Equal(t, "sess-1", fields["session_id"])
	assert.NotEmpty(t, fields["assessment_completed_date"])

	// Empty values are dropped, not sent as empty strings.
	_, hasMedium := fields["utm_medium"]
	assert.False(t, hasMedium)
}

func TestSubmitLead(t *testing.T) {
	var captured formSubmission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHubSpotClientWithBaseURL("2143432", "form-guid", server.URL)

	lead := models.LeadData{
		FirstName:         "Avery",
		LastName:          "Stone",
		Email:             "avery@trailworks.com",
		Company:           "Trailworks",
		BusinessType:      "retailer",
		CurrentChallenges: []string{"slow site", "content bottlenecks"},
	}
	result := &models.AssessmentResult{OverallScore: 42, Level: models.LevelBaseCampStrong}

	err := client.SubmitLead(context.Background(), lead, models.TrackingData{SessionID: "sess-1"}, result)
	require.NoError(t, err)

	fields := map[string]string{}
	for _, f := range captured.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "Avery", fields["firstname"])
	assert.Equal(t, "Stone", fields["lastname"])
	assert.Equal(t, "42", fields["assessment_score"])
	assert.Equal(t, "Base Camp Strong", fields["assessment_level"])
	assert.Equal(t, "slow site; content bottlenecks", fields["current_challenges"])
}

func TestSubmitRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad form", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHubSpotClientWithBaseURL("2143432", "form-guid", server.URL)

	err := client.SubmitEmailGate(context.Background(), models.EmailGateData{Email: "a@b.com"}, models.TrackingData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestSubmitUnconfigured(t *testing.T) {
	client := NewHubSpotClient("", "")
	err := client.SubmitEmailGate(context.Background(), models.EmailGateData{}, models.TrackingData{})
	assert.Error(t, err)
}
