package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/di"
	"github.com/aristath/finwell/internal/scheduler"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	runs int
}

func (j *stubJob) Name() string { return "stub" }
func (j *stubJob) Run() error {
	j.runs++
	return nil
}

func newTestServer(t *testing.T, sched *scheduler.Scheduler) *Server {
	t.Helper()
	cfg := &config.Config{
		DataDir:             t.TempDir(),
		Port:                8010,
		MaintenanceSchedule: "0 0 3 * * *",
		Store:               config.StoreMemory,
		Backup:              &config.BackupConfig{},
	}

	container, _, err := di.Wire(cfg, zerolog.Nop(), nil)
	require.NoError(t, err)

	s := New(Config{
		Log:       zerolog.New(nil).Level(zerolog.Disabled),
		Port:      cfg.Port,
		DevMode:   true,
		Container: container,
		Scheduler: sched,
	})
	s.systemHandlers.hostStats = func() (float64, float64) { return 12.5, 40 }
	return s
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "finwell", response["service"])
}

func TestSystemStatus(t *testing.T) {
	s := newTestServer(t, nil)

	body, err := json.Marshal(testhelpers.NewProfileFixture())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/api/profiles", body).Code)

	w := do(t, s, http.MethodGet, "/api/system/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response SystemStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, 1, response.ProfileCount)
	assert.Equal(t, 12.5, response.CPUPercent)
	assert.Equal(t, 40.0, response.MemoryPercent)
	assert.GreaterOrEqual(t, response.UptimeSeconds, int64(0))
}

func TestRoutesMounted(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/profiles", "", http.StatusOK},
		{http.MethodGet, "/api/profiles/latest", "", http.StatusNotFound},
		{http.MethodPost, "/api/profiles/random", "", http.StatusCreated},
		{http.MethodGet, "/api/budget", "", http.StatusOK},
		{http.MethodGet, "/api/expenses/analysis", "", http.StatusOK},
		{http.MethodGet, "/api/debts/strategy?strategy=snowball", "", http.StatusOK},
		{http.MethodGet, "/api/debts/strategy?strategy=random", "", http.StatusBadRequest},
		{http.MethodPost, "/api/net-worth", `{"assets":[{"name":"Car","value":100}],"liabilities":[]}`, http.StatusOK},
		{http.MethodGet, "/api/cash-flows/forecast?months=3", "", http.StatusOK},
		{http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, s, tt.method, tt.path, []byte(tt.body))
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestJobs(t *testing.T) {
	t.Run("without scheduler", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := do(t, s, http.MethodGet, "/api/system/jobs", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"jobs":[]}`, w.Body.String())

		assert.Equal(t, http.StatusServiceUnavailable, do(t, s, http.MethodPost, "/api/system/jobs/stub", nil).Code)
	})

	t.Run("with scheduler", func(t *testing.T) {
		sched := scheduler.New(zerolog.Nop())
		job := &stubJob{}
		require.NoError(t, sched.AddJob("@every 1h", job))
		s := newTestServer(t, sched)

		w := do(t, s, http.MethodGet, "/api/system/jobs", nil)
		assert.JSONEq(t, `{"jobs":["stub"]}`, w.Body.String())

		w = do(t, s, http.MethodPost, "/api/system/jobs/stub", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, job.runs)

		assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/system/jobs/missing", nil).Code)
	})
}

func TestDatabaseStats_MemoryStore(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/system/database/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/budget", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
