package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/finwell/internal/modules/analysis"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource string

func (s fixedSource) Generate(context.Context) (string, error) { return string(s), nil }

const submitBody = `{
  "name": "Thandi Mokoena",
  "age": 28,
  "goals": [{"name": "Emergency Fund", "amount": 30000}],
  "income": {"salary": 20000},
  "debts": [{"name": "Card", "interestRate": 20, "monthly_payment": 6000}],
  "transactionAggregates": [
    {"category": "Groceries", "totalAmount": 3000, "month": "October"},
    {"category": "Transport", "totalAmount": 2000, "month": "October"}
  ],
  "recurringMerchants": [],
  "payDates": [{"date": "2025-10-25", "category": "salary"}]
}`

func setupRouter(source analysis.ProfileSource) (*chi.Mux, *testhelpers.MockProfileRepository) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	repo := testhelpers.NewMockProfileRepository()
	handler := NewHandler(analysis.NewService(repo, source, logger), logger)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSubmit(t *testing.T) {
	router, repo := setupRouter(nil)

	w := do(router, http.MethodPost, "/profiles", submitBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response struct {
		Data analysis.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "medium", string(response.Data.RiskLevel))
	assert.Equal(t, 7000.0, response.Data.Leftover)

	count, _ := repo.Count()
	assert.Equal(t, 1, count)
}

func TestHandleSubmit_BadRequests(t *testing.T) {
	router, _ := setupRouter(nil)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/profiles", `{"name":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/profiles", `{"age": 30}`).Code)
}

func TestHandleGenerate(t *testing.T) {
	good := fixedSource(`{"name": "Gen", "age": 40, "income": {"salary": 5000}, "expenses": {"fixed": [], "variable": []}}`)
	router, _ := setupRouter(good)

	w := do(router, http.MethodPost, "/profiles/random", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"generated":true`)

	router, repo := setupRouter(fixedSource("nope"))
	w = do(router, http.MethodPost, "/profiles/random", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), analysis.GenerationFailedMessage)
	count, _ := repo.Count()
	assert.Zero(t, count)
}

func TestHandleListAndLatest(t *testing.T) {
	router, repo := setupRouter(nil)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/profiles/latest", "").Code)

	repo.SetProfiles(testhelpers.NewProfileFixtures())

	w := do(router, http.MethodGet, "/profiles", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 3)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/profiles/latest", "").Code)
}
