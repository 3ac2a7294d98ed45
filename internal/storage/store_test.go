package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevrinc/outdoor-quiz/internal/models"
	"github.com/ndevrinc/outdoor-quiz/internal/utils"
)

func newMemoryStore() *Store {
	return NewStore(NewMemoryKV(), utils.NewDevelopmentLogger())
}

func newRedisStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(NewRedisKV(client, time.Hour), utils.NewDevelopmentLogger())
}

func storeVariants(t *testing.T) map[string]*Store {
	return map[string]*Store{
		"memory": newMemoryStore(),
		"redis":  newRedisStore(t),
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	for name, store := range storeVariants(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			answers := []models.Answer{
				{QuestionID: "audience-1", Value: 4, Category: models.CategoryAudienceExperience},
				{QuestionID: "creator-1", Value: 6, Category: models.CategoryCreatorExperience},
			}

			store.SaveAnswers(ctx, "sess-1", answers)
			loaded := store.LoadAnswers(ctx, "sess-1")

			assert.Equal(t, answers, loaded)
		})
	}
}

func TestLoadMissingReturnsNil(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	assert.Nil(t, store.LoadAnswers(ctx, "nope"))
	assert.Nil(t, store.LoadResult(ctx, "nope"))
	assert.Nil(t, store.LoadEmailGate(ctx, "nope"))
	assert.Nil(t, store.LoadLead(ctx, "nope"))
	assert.Nil(t, store.LoadTracking(ctx, "nope"))
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	store.SaveAnswers(ctx, "sess-1", []models.Answer{{QuestionID: "audience-1", Value: 2}})
	store.SaveAnswers(ctx, "sess-2", []models.Answer{{QuestionID: "audience-1", Value: 6}})

	a := store.LoadAnswers(ctx, "sess-1")
	b := store.LoadAnswers(ctx, "sess-2")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, 2, a[0].Value)
	assert.Equal(t, 6, b[0].Value)
}

func TestResultRoundTrip(t *testing.T) {
	for name, store := range storeVariants(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			result := models.AssessmentResult{
				OverallScore:      42,
				OverallPercentage: 70,
				Level:             models.LevelBaseCampStrong,
				LevelIcon:         "🏕️",
			}

			store.SaveResult(ctx, "sess-1", result)
			loaded := store.LoadResult(ctx, "sess-1")

			require.NotNil(t, loaded)
			assert.Equal(t, 42, loaded.OverallScore)
			assert.Equal(t, models.LevelBaseCampStrong, loaded.Level)
		})
	}
}

func TestClearAssessment_KeepsTracking(t *testing.T) {
	for name, store := range storeVariants(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			sessionID := "sess-1"

			store.SaveAnswers(ctx, sessionID, []models.Answer{{QuestionID: "audience-1", Value: 2}})
			store.SaveResult(ctx, sessionID, models.AssessmentResult{OverallScore: 10})
			store.SaveEmailGate(ctx, sessionID, models.EmailGateData{Email: "a@b.com", Website: "b.com"})
			store.SaveLead(ctx, sessionID, models.LeadData{FirstName: "Avery"})
			store.SaveTracking(ctx, sessionID, models.TrackingData{
				SessionID: sessionID,
				UTM:       models.UTMParams{Source: "newsletter"},
			})

			store.ClearAssessment(ctx, sessionID)

			assert.Nil(t, store.LoadAnswers(ctx, sessionID))
			assert.Nil(t, store.LoadResult(ctx, sessionID))
			assert.Nil(t, store.LoadEmailGate(ctx, sessionID))
			assert.Nil(t, store.LoadLead(ctx, sessionID))

			tracking := store.LoadTracking(ctx, sessionID)
			require.NotNil(t, tracking)
			assert.Equal(t, "newsletter", tracking.UTM.Source)
		})
	}
}

// failingKV simulates a broken backend; every call errors.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, assert.AnError
}
func (failingKV) Set(context.Context, string, string) error { return assert.AnError }
func (failingKV) Delete(context.Context, ...string) error   { return assert.AnError }

func TestStoreFailuresAreSwallowed(t *testing.T) {
	store := NewStore(failingKV{}, utils.NewDevelopmentLogger())
	ctx := context.Background()

	// None of these may panic or surface the backend error.
	store.SaveAnswers(ctx, "sess-1", []models.Answer{{QuestionID: "audience-1", Value: 2}})
	store.ClearAssessment(ctx, "sess-1")
	assert.Nil(t, store.LoadAnswers(ctx, "sess-1"))
	assert.Nil(t, store.LoadResult(ctx, "sess-1"))
}
