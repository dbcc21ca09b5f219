package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(NewHandler(logger, 2))
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestTimeline_FCFS(t *testing.T) {
	resp, body := post(t, newTestApp(), `{"algorithm":"fcfs","processes":[
		{"name":"P1","arrival":0,"burst":3},
		{"name":"P2","arrival":1,"burst":2}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out TimelineResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "fcfs", out.Algorithm)
	assert.Equal(t, []string{"P1", "P1", "P1", "P2", "P2"}, out.Timeline)
	require.Len(t, out.Metrics, 2)
	assert.Equal(t, 5, out.Metrics[1].Finish)
	assert.Equal(t, 2, out.Metrics[1].Waiting)
	require.NotNil(t, out.MostEfficient)
	assert.Equal(t, "P1", out.MostEfficient.Name)
	assert.Len(t, out.Gantt, 2)
	assert.Empty(t, out.ReadyQueues)
}

func TestTimeline_RoundRobinDefaultQuantum(t *testing.T) {
	resp, body := post(t, newTestApp(), `{"algorithm":"rr","processes":[
		{"name":"P1","arrival":0,"burst":4},
		{"name":"P2","arrival":1,"burst":2}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out TimelineResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 2, out.Quantum)
	assert.Equal(t, []string{"P1", "P1", "P2", "P2", "P1", "P1"}, out.Timeline)
	require.Len(t, out.ReadyQueues, 6)
	// P2 arrives at 1 and waits behind the running P1
	require.Len(t, out.ReadyQueues[1], 1)
	assert.Equal(t, "P2", out.ReadyQueues[1][0].Name)
}

func TestTimeline_Errors(t *testing.T) {
	app := newTestApp()
	cases := map[string]string{
		"zero quantum": `{"algorithm":"rr","quantum":0,"processes":[{"name":"P1","arrival":0,"burst":1}]}`,
		"empty set":    `{"algorithm":"fcfs","processes":[]}`,
		"duplicate":    `{"algorithm":"sjf","processes":[{"name":"A","arrival":0,"burst":1},{"name":"A","arrival":1,"burst":1}]}`,
		"unknown algo": `{"algorithm":"lottery","processes":[{"name":"A","arrival":0,"burst":1}]}`,
		"bad json":     `{"algorithm":`,
	}
	for name, body := range cases {
		resp, data := post(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		assert.Contains(t, string(data), `"error"`, name)
	}
}

func TestAlgorithmsAndHealth(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var algos []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&algos))
	require.Len(t, algos, 3)
	assert.Equal(t, "rr", algos[2]["name"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
