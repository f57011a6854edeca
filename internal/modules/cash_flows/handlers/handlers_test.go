package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/finwell/internal/modules/cash_flows"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *chi.Mux {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	repo := testhelpers.NewMockProfileRepository()
	repo.SetProfiles(testhelpers.NewProfileFixtures())

	handler := NewHandler(cash_flows.NewService(repo, logger), logger)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestHandleGetForecast(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
		expectedMonths int
	}{
		{name: "all profiles default months", query: "", expectedStatus: http.StatusOK, expectedCount: 3, expectedMonths: 6},
		{name: "selected profiles", query: "?user_ids=1,2&months=3", expectedStatus: http.StatusOK, expectedCount: 2, expectedMonths: 3},
		{name: "zero months uses default", query: "?months=0", expectedStatus: http.StatusOK, expectedCount: 3, expectedMonths: 6},
		{name: "negative months", query: "?months=-1", expectedStatus: http.StatusBadRequest},
		{name: "non-numeric months", query: "?months=six", expectedStatus: http.StatusBadRequest},
		{name: "bad ids", query: "?user_ids=1,x", expectedStatus: http.StatusBadRequest},
	}

	router := setupRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cash-flows/forecast"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response struct {
				Data []cash_flows.Projection `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			require.Len(t, response.Data, tt.expectedCount)
			assert.Len(t, response.Data[0].Projection, tt.expectedMonths)
		})
	}
}
