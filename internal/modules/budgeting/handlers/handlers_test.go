package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/budgeting"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(repo *testhelpers.MockProfileRepository) *chi.Mux {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(budgeting.NewService(repo, logger), logger)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestHandleGetBudget(t *testing.T) {
	repo := testhelpers.NewMockProfileRepository()
	repo.SetProfiles([]domain.FinancialProfile{testhelpers.NewProfileFixture()})

	req := httptest.NewRequest(http.MethodGet, "/budget", nil)
	w := httptest.NewRecorder()
	setupRouter(repo).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "metadata")

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Thandi Mokoena", data["name"])

	plan := data["plan"].(map[string]interface{})
	assert.Equal(t, true, plan["hasSurplus"])
	assert.Equal(t, 3142.86, plan["emergencyFundThisMonth"])
	assert.Len(t, plan["forecast"], budgeting.ForecastMonths)
}

func TestHandleGetBudget_NoProfile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/budget", nil)
	w := httptest.NewRecorder()
	setupRouter(testhelpers.NewMockProfileRepository()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetBudget_RepositoryError(t *testing.T) {
	repo := testhelpers.NewMockProfileRepository()
	repo.SetError(errors.New("locked"))

	req := httptest.NewRequest(http.MethodGet, "/budget", nil)
	w := httptest.NewRecorder()
	setupRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
