package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"spotlight/spotlight/config"
	"spotlight/spotlight/routes"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/sources/psql/psqltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testKey = "admin-key"

var t0 = time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

func newTestAPI(t *testing.T) (string, *models.Assessment) {
	t.Helper()
	db := psqltest.NewDatabase(t)
	w1 := "W1"
	top := &models.Assessment{SessionID: "s1", InnovationName: "Pill Box", ProblemValue: 5, SolutionFit: 4, ValueForMoney: 4, TotalScore: 13, Recommendation: "Proceed to pilot", Completed: t0}
	psqltest.Seed(t, db,
		&models.Session{SessionID: "s1", ThreadID: "t1", AssistantID: "a", InnovationName: "Pill Box", WorkshopID: &w1, Created: t0, Completed: true},
		&models.Session{SessionID: "s2", ThreadID: "t2", AssistantID: "a", InnovationName: "Fall Sensor", Created: t0.Add(time.Hour)},
		&models.Message{SessionID: "s1", Role: models.RoleUser, Content: "It sorts pills", Timestamp: t0},
		&models.Message{SessionID: "s1", Role: models.RoleAssistant, Content: "Who pays for it?", Timestamp: t0.Add(time.Second)},
		top,
		&models.Assessment{SessionID: "s2", InnovationName: "Fall Sensor", ProblemValue: 2, SolutionFit: 2, ValueForMoney: 2, TotalScore: 6, Recommendation: "Rethink", Completed: t0.Add(time.Hour)},
	)
	srv := httptest.NewServer(routes.NewRouter(config.Config{AdminAPIKey: testKey}, db))
	t.Cleanup(srv.Close)
	return srv.URL + "/api", top
}

func executeCLI(t *testing.T, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SPOTLIGHT_API_URL", apiURL)
	t.Setenv("SPOTLIGHT_API_KEY", testKey)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStatsTable(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "stats")
	require.NoError(t, err)
	assert.Regexp(t, `Total sessions\s+2\n`, stdout)
	assert.Regexp(t, `Average score\s+9\.5\n`, stdout)
	assert.Contains(t, stdout, "Pill Box (13)")
}

func TestSessionsJSON(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "sessions", "--workshop", "W1", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Sessions []models.Session `json:"sessions"`
		Page     struct {
			Total int `json:"total"`
		} `json:"page"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "s1", got.Sessions[0].SessionID)
	assert.Equal(t, 1, got.Page.Total)
}

func TestSessionsTableSortedWithFooter(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "sessions", "--sort", "innovationName")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(stdout), []byte("Fall Sensor")), bytes.Index([]byte(stdout), []byte("Pill Box")))
	assert.Contains(t, stdout, "Showing 1-2 of 2 sessions (page 1/1)")

	_, _, err = executeCLI(t, api, "sessions", "--sort", "bogus")
	assert.ErrorContains(t, err, "unknown sort column")
}

func TestAssessmentsYAML(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "assessments", "--search", "pill", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	list, ok := got["assessments"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Pill Box", list[0].(map[string]any)["innovationName"])
}

func TestAssessmentsTableTiers(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "assessments")
	require.NoError(t, err)
	assert.Contains(t, stdout, "High Quality")
	assert.Contains(t, stdout, "Needs Development")
}

func TestConversation(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "conversation", "s1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Innovation: Pill Box")
	assert.Contains(t, stdout, "[08:00:00] User\nIt sorts pills")
	assert.Contains(t, stdout, "Assistant\nWho pays for it?")

	_, _, err = executeCLI(t, api, "conversation", "missing")
	assert.EqualError(t, err, "Session not found")
}

func TestAssessmentDetail(t *testing.T) {
	api, top := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "assessment", top.ID.String())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Significant problem")
	assert.Contains(t, stdout, "Excellent fit")
	assert.Contains(t, stdout, "High Quality")
	assert.Contains(t, stdout, "Proceed to pilot")
}

func TestSummaryJSON(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "summary", "--top", "1", "-o", "json")
	require.NoError(t, err)

	var got struct {
		HighQualityCount int                 `json:"highQualityCount"`
		Top              []models.Assessment `json:"topInnovations"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 1, got.HighQualityCount)
	require.Len(t, got.Top, 1)
	assert.Equal(t, "Pill Box", got.Top[0].InnovationName)
}

func TestReportsJSON(t *testing.T) {
	api, _ := newTestAPI(t)
	stdout, _, err := executeCLI(t, api, "reports", "--months", "3", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Monthly []json.RawMessage `json:"monthly"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Len(t, got.Monthly, 3)
}

func TestWrongKeyFails(t *testing.T) {
	api, _ := newTestAPI(t)
	_, _, err := executeCLI(t, api, "--api-key", "wrong", "stats")
	assert.EqualError(t, err, "Unauthorized")
}

func TestInvalidOutput(t *testing.T) {
	api, _ := newTestAPI(t)
	_, _, err := executeCLI(t, api, "stats", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output")
}

func TestMissingKey(t *testing.T) {
	t.Setenv("SPOTLIGHT_API_KEY", "")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats"})
	assert.ErrorContains(t, root.Execute(), "an API key is required")
}
