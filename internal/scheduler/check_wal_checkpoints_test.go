package scheduler

import (
	"testing"

	"github.com/aristath/finwell/internal/database"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWALCheckpointsJob_Name(t *testing.T) {
	job := NewCheckWALCheckpointsJob(nil)
	assert.Equal(t, "check_wal_checkpoints", job.Name())
}

func TestCheckWALCheckpointsJob_Run_NoDatabases(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	job := NewCheckWALCheckpointsJob(map[string]*database.DB{"profiles": nil})
	job.SetLogger(log)

	err := job.Run()
	assert.NoError(t, err)
}

func TestCheckWALCheckpointsJob_Run(t *testing.T) {
	db, cleanup := testhelpers.NewTestDB(t, "profiles")
	defer cleanup()

	job := NewCheckWALCheckpointsJob(map[string]*database.DB{"profiles": db})
	job.SetLogger(zerolog.Nop())

	require.NoError(t, job.Run())
}
