package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleChallenge(t *testing.T) {
	lead := LeadData{}

	lead.ToggleChallenge("inventory sync")
	lead.ToggleChallenge("site speed")
	assert.Equal(t, []string{"inventory sync", "site speed"}, lead.CurrentChallenges)

	// Toggling an existing challenge removes it, never duplicates it.
	lead.ToggleChallenge("inventory sync")
	assert.Equal(t, []string{"site speed"}, lead.CurrentChallenges)

	lead.ToggleChallenge("inventory sync")
	assert.Equal(t, []string{"site speed", "inventory sync"}, lead.CurrentChallenges)
}
