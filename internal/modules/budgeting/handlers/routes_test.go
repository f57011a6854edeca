package handlers

import (
	"testing"

	"github.com/aristath/finwell/internal/modules/budgeting"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(budgeting.NewService(testhelpers.NewMockProfileRepository(), logger), logger)

	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
	assert.Len(t, router.Routes(), 1)
}
