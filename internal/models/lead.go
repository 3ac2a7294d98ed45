package models

import "time"

// EmailGateData is the contact capture required before results are revealed.
type EmailGateData struct {
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website" validate:"required,website"`
}

// LeadData is the extended contact-and-firmographic record captured after
// results are shown. CurrentChallenges is set-like: toggled membership, no
// duplicates.
type LeadData struct {
	FirstName         string   `json:"first_name" validate:"required"`
	LastName          string   `json:"last_name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Company           string   `json:"company" validate:"required"`
	Phone             string   `json:"phone" validate:"omitempty,phone"`
	BusinessType      string   `json:"business_type" validate:"required"`
	AnnualRevenue     string   `json:"annual_revenue" validate:"omitempty"`
	TeamSize          string   `json:"team_size" validate:"omitempty"`
	CurrentChallenges []string `json:"current_challenges"`
}

// ToggleChallenge adds the challenge if absent, removes it if present.
func (l *LeadData) ToggleChallenge(challenge string) {
	for i, c := range l.CurrentChallenges {
		if c == challenge {
			l.CurrentChallenges = append(l.CurrentChallenges[:i], l.CurrentChallenges[i+1:]...)
			return
		}
	}
	l.CurrentChallenges = append(l.CurrentChallenges, challenge)
}

// UTMParams are campaign-attribution parameters captured once at session start.
type UTMParams struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Term     string `json:"utm_term,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// TrackingData is the attribution snapshot for one session. All fields except
// SessionID are captured once at session start and never re-derived.
type TrackingData struct {
	UTM         UTMParams `json:"utm"`
	Referrer    string    `json:"referrer"`
	LandingPage string    `json:"landing_page"`
	UserAgent   string    `json:"user_agent"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id"`
}
