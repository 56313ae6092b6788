package drill

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	cache := NewCache(100, time.Minute, quartz.NewMock(t))
	return NewServer("localhost:0", cache, logger)
}

func getScenario(t *testing.T, ts *httptest.Server, query string) ScenarioResponse {
	t.Helper()

	resp, err := http.Get(ts.URL + "/api/drill/scenario?" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var scenario ScenarioResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scenario))
	return scenario
}

func postAnswer(t *testing.T, ts *httptest.Server, req AnswerRequest) *http.Response {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/api/drill/answer", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestScenarioEndpoint(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	scenario := getScenario(t, ts, "topic=PreflopDecision&difficulty=Beginner&seed=42")

	assert.True(t, strings.HasPrefix(scenario.ScenarioID, "PF-"))
	assert.Equal(t, "Preflop Decision", scenario.Title)
	assert.NotEmpty(t, scenario.Question)
	assert.GreaterOrEqual(t, len(scenario.Answers), 2)
	assert.Empty(t, scenario.TableSetup.Board)

	// Same seed, same scenario
	again := getScenario(t, ts, "topic=PreflopDecision&difficulty=Beginner&seed=42")
	assert.Equal(t, scenario, again)
}

func TestScenarioEndpointRedaction(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/drill/scenario?topic=BluffSpot&seed=7")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Grading fields must never reach the client
	assert.NotContains(t, string(body), "is_correct")
	assert.NotContains(t, string(body), "explanation")
	assert.NotContains(t, string(body), "branch_key")
}

func TestScenarioEndpointStreetSelector(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	scenario := getScenario(t, ts, "topic=River&seed=3")
	prefix := scenario.ScenarioID[:2]
	assert.Contains(t, []string{"BL", "RV", "RF"}, prefix)
}

func TestScenarioEndpointParseErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	for _, query := range []string{
		"topic=NotATopic",
		"topic=PreflopDecision&difficulty=Impossible",
		"topic=PreflopDecision&style=Florid",
		"topic=PreflopDecision&seed=notanumber",
	} {
		resp, err := http.Get(ts.URL + "/api/drill/scenario?" + query)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)

		var errBody errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody), query)
		assert.NotEmpty(t, errBody.Error, query)
		resp.Body.Close()
	}
}

func TestAnswerEndpoint(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	scenario := getScenario(t, ts, "topic=PotOddsAndEquity&seed=11")

	var correctID string
	for _, choice := range scenario.Answers {
		resp := postAnswer(t, ts, AnswerRequest{
			ScenarioID: scenario.ScenarioID,
			AnswerID:   choice.ID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var verdict AnswerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&verdict))
		resp.Body.Close()

		assert.NotEmpty(t, verdict.Explanation)
		assert.NotEmpty(t, verdict.CorrectAnswerID)
		if verdict.IsCorrect {
			correctID = choice.ID
			assert.Equal(t, choice.ID, verdict.CorrectAnswerID)
		}
	}
	require.NotEmpty(t, correctID, "no answer graded correct")
}

func TestAnswerEndpointUnknownScenario(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp := postAnswer(t, ts, AnswerRequest{ScenarioID: "PF-DEADBEEF", AnswerID: "A"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnswerEndpointUnknownAnswer(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	scenario := getScenario(t, ts, "topic=PreflopDecision&seed=5")
	resp := postAnswer(t, ts, AnswerRequest{ScenarioID: scenario.ScenarioID, AnswerID: "Z"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnswerEndpointBadBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/drill/answer", "application/json",
		strings.NewReader("not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStreamSession(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/drill/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(StreamMessage{
		Type:       MsgRequest,
		Topic:      "RiverCallOrFold",
		Difficulty: "Intermediate",
		Seed:       "99",
	}))

	var scenarioMsg StreamMessage
	require.NoError(t, conn.ReadJSON(&scenarioMsg))
	require.Equal(t, MsgScenario, scenarioMsg.Type)
	require.NotNil(t, scenarioMsg.Scenario)
	assert.True(t, strings.HasPrefix(scenarioMsg.Scenario.ScenarioID, "RF-"))

	require.NoError(t, conn.WriteJSON(StreamMessage{
		Type:       MsgAnswer,
		ScenarioID: scenarioMsg.Scenario.ScenarioID,
		AnswerID:   scenarioMsg.Scenario.Answers[0].ID,
	}))

	var verdictMsg StreamMessage
	require.NoError(t, conn.ReadJSON(&verdictMsg))
	require.Equal(t, MsgVerdict, verdictMsg.Type)
	require.NotNil(t, verdictMsg.Verdict)
	assert.NotEmpty(t, verdictMsg.Verdict.Explanation)
}

func TestStreamBadRequest(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/drill/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(StreamMessage{Type: MsgRequest, Topic: "NotATopic"}))

	var msg StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MsgError, msg.Type)
	assert.NotEmpty(t, msg.Error)
}
