package expenses

import (
	"errors"
	"testing"

	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AnalyzeAll(t *testing.T) {
	repo := testhelpers.NewMockProfileRepository()
	repo.SetProfiles(testhelpers.NewProfileFixtures())
	svc := NewService(repo, zerolog.New(nil).Level(zerolog.Disabled))

	out, err := svc.AnalyzeAll()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Lerato Nkosi", out[2].User)
	assert.Equal(t, 12000.0, out[2].SavingsPotential)
}

func TestService_AnalyzeAll_Empty(t *testing.T) {
	svc := NewService(testhelpers.NewMockProfileRepository(), zerolog.New(nil).Level(zerolog.Disabled))

	out, err := svc.AnalyzeAll()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestService_AnalyzeAll_Error(t *testing.T) {
	repo := testhelpers.NewMockProfileRepository()
	repo.SetError(errors.New("boom"))
	svc := NewService(repo, zerolog.New(nil).Level(zerolog.Disabled))

	_, err := svc.AnalyzeAll()
	assert.ErrorContains(t, err, "boom")
}
