package dashboard

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"spotlight/spotlight/config"
	"spotlight/spotlight/routes"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/sources/psql/psqltest"
	"spotlight/spotlight/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "admin-key"

// newTestServer serves the real router over a seeded in-memory store.
func newTestServer(t *testing.T) (*httptest.Server, *models.Assessment) {
	t.Helper()
	db := psqltest.NewDatabase(t)
	top := &models.Assessment{SessionID: "s1", InnovationName: "Pill Box", ProblemValue: 5, SolutionFit: 4, ValueForMoney: 4, TotalScore: 13, Recommendation: "Proceed", Completed: t0}
	psqltest.Seed(t, db,
		&models.Session{SessionID: "s1", ThreadID: "t1", AssistantID: "a", InnovationName: "Pill Box", WorkshopID: strPtr("W1"), Created: t0, Completed: true},
		&models.Session{SessionID: "s2", ThreadID: "t2", AssistantID: "a", InnovationName: "Fall Sensor", Created: t0.Add(time.Hour)},
		&models.Message{SessionID: "s1", Role: models.RoleUser, Content: "hi", Timestamp: t0},
		&models.Message{SessionID: "s1", Role: models.RoleAssistant, Content: "hello", Timestamp: t0.Add(time.Second)},
		top,
		&models.Assessment{SessionID: "s2", InnovationName: "Fall Sensor", ProblemValue: 2, SolutionFit: 2, ValueForMoney: 2, TotalScore: 6, Recommendation: "Rethink", Completed: t0.Add(time.Hour)},
	)
	srv := httptest.NewServer(routes.NewRouter(config.Config{AdminAPIKey: testKey}, db))
	t.Cleanup(srv.Close)
	return srv, top
}

func TestClientQueries(t *testing.T) {
	srv, top := newTestServer(t)
	c := NewClient(srv.URL+"/api/", testKey, srv.Client())
	ctx := context.Background()

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalSessions)
	assert.EqualValues(t, 2, stats.CompletedAssessments)
	assert.InDelta(t, 9.5, stats.AverageScore, 0.001)
	require.NotNil(t, stats.HighestRated)
	assert.Equal(t, "Pill Box", stats.HighestRated.InnovationName)

	sessions, err := c.Sessions(ctx, types.SessionFilter{WorkshopID: "W1"})
	require.NoError(t, err)
	assert.Equal(t, 1, sessions.Count)
	assert.Equal(t, "s1", sessions.Sessions[0].SessionID)

	assessments, err := c.Assessments(ctx, types.AssessmentFilter{Search: "fall"})
	require.NoError(t, err)
	assert.Equal(t, 1, assessments.Count)
	assert.Equal(t, "s2", assessments.Assessments[0].SessionID)

	conv, err := c.Conversation(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, conv.Count)
	assert.Equal(t, models.RoleUser, conv.Messages[0].Role)

	a, err := c.Assessment(ctx, top.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 13, a.TotalScore)
}

func TestClientErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL+"/api", testKey, srv.Client())
	ctx := context.Background()

	_, err := c.Conversation(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.EqualError(t, err, "Session not found")
	assert.True(t, c.LoggedIn())

	_, err = c.Assessment(ctx, "")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestClientLogsOutOnUnauthorized(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL+"/api", "wrong", srv.Client())
	ctx := context.Background()

	_, err := c.Stats(ctx)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.False(t, c.LoggedIn())

	_, err = c.Stats(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	c.Login(testKey)
	_, err = c.Stats(ctx)
	assert.NoError(t, err)
}
