// Package crm submits captured contacts to the HubSpot Forms API. Submission
// is best-effort: callers treat failures as non-fatal and continue the
// session flow.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

const defaultBaseURL = "https://api.hsforms.com"

// Client talks to the HubSpot Forms API for one portal/form pair.
type Client interface {
	// Available reports whether the portal and form identifiers are configured.
	Available() bool
	SubmitEmailGate(ctx context.Context, gate models.EmailGateData, tracking models.TrackingData) error
	SubmitLead(ctx context.Context, lead models.LeadData, tracking models.TrackingData, result *models.AssessmentResult) error
}

type hubspotClient struct {
	portalID   string
	formGUID   string
	baseURL    string
	httpClient *http.Client
}

func NewHubSpotClient(portalID, formGUID string) Client {
	return &hubspotClient{
		portalID: portalID,
		formGUID: formGUID,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewHubSpotClientWithBaseURL targets an alternative API host, for tests.
func NewHubSpotClientWithBaseURL(portalID, formGUID, baseURL string) Client {
	c := NewHubSpotClient(portalID, formGUID).(*hubspotClient)
	c.baseURL = baseURL
	return c
}

func (c *hubspotClient) Available() bool {
	return c.portalID != "" && c.formGUID != ""
}

type formField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type formContext struct {
	PageURI  string `json:"pageUri,omitempty"`
	PageName string `json:"pageName,omitempty"`
}

type formSubmission struct {
	Fields  []formField `json:"fields"`
	Context formContext `json:"context"`
}

// SubmitEmailGate pushes the gate contact with its attribution snapshot.
func (c *hubspotClient) SubmitEmailGate(ctx context.Context, gate models.EmailGateData, tracking models.TrackingData) error {
	fields := newFieldSet()
	fields.add("email", gate.Email)
	fields.add("website", gate.Website)
	fields.addTracking(tracking)
	fields.add("assessment_completed_date", time.Now().Format(time.RFC3339))

	return c.submit(ctx, fields.fields, formContext{
		PageURI:  tracking.LandingPage,
		PageName: "Adventure Commerce Assessment - Email Gate",
	})
}

// SubmitLead pushes the full lead profile, enriched with the assessment
// outcome when available.
func (c *hubspotClient) SubmitLead(ctx context.Context, lead models.LeadData, tracking models.TrackingData, result *models.AssessmentResult) error {
	fields := newFieldSet()
	fields.add("email", lead.Email)
	fields.add("firstname", lead.FirstName)
	fields.add("lastname", lead.LastName)
	fields.add("company", lead.Company)
	fields.add("phone", lead.Phone)
	fields.add("business_type", lead.BusinessType)
	fields.add("annual_revenue", lead.AnnualRevenue)
	fields.add("team_size", lead.TeamSize)
	fields.addJoined("current_challenges", lead.CurrentChallenges)
	fields.addTracking(tracking)
	if result != nil {
		fields.add("assessment_score", fmt.Sprintf("%d", result.OverallScore))
		fields.add("assessment_level", string(result.Level))
	}
	fields.add("assessment_completed_date", time.Now().Format(time.RFC3339))

	return c.submit(ctx, fields.fields, formContext{
		PageURI:  tracking.LandingPage,
		PageName: "Adventure Commerce Assessment - Lead Form",
	})
}

func (c *hubspotClient) submit(ctx context.Context, fields []formField, fctx formContext) error {
	if !c.Available() {
		return fmt.Errorf("hubspot client not configured")
	}

	payload, err := json.Marshal(formSubmission{Fields: fields, Context: fctx})
	if err != nil {
		return fmt.Errorf("failed to marshal form submission: %w", err)
	}

	url := fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s", c.baseURL, c.portalID, c.formGUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("form submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("form submission rejected: status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// fieldSet accumulates form fields, skipping empty values the way the Forms
// API expects.
type fieldSet struct {
	fields []formField
}

func newFieldSet() *fieldSet {
	return &fieldSet{fields: make([]formField, 0, 16)}
}

func (f *fieldSet) add(name, value string) {
	if value == "" {
		return
	}
	f.fields = append(f.fields, formField{Name: name, Value: value})
}

func (f *fieldSet) addJoined(name string, values []string) {
	if len(values) == 0 {
		return
	}
	joined := values[0]
	for _, v := range values[1:] {
		joined += "; " + v
	}
	f.add(name, joined)
}

func (f *fieldSet) addTracking(tracking models.TrackingData) {
	f.add("utm_source", tracking.UTM.Source)
	f.add("utm_medium", tracking.UTM.Medium)
	f.add("utm_campaign", tracking.UTM.Campaign)
	f.add("utm_term", tracking.UTM.Term)
	f.add("utm_content", tracking.UTM.Content)
	f.add("referrer_url", tracking.Referrer)
	f.add("landing_page", tracking.LandingPage)
	f.add("session_id", tracking.SessionID)
}
