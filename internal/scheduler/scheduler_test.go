package scheduler

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs int
	err  error
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run() error {
	j.runs++
	return j.err
}

func TestScheduler_AddJob(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("0 0 3 * * *", &countingJob{name: "b"}))
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "a"}))

	assert.Equal(t, []string{"a", "b"}, s.JobNames())
}

func TestScheduler_AddJob_InvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())

	err := s.AddJob("not a schedule", &countingJob{name: "broken"})
	assert.Error(t, err)
	assert.Empty(t, s.JobNames())
}

func TestScheduler_RunByName(t *testing.T) {
	s := New(zerolog.Nop())
	job := &countingJob{name: "backup_profiles"}
	require.NoError(t, s.AddJob("0 30 3 * * *", job))

	require.NoError(t, s.RunByName("backup_profiles"))
	assert.Equal(t, 1, job.runs)

	err := s.RunByName("missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestScheduler_RunNow_PropagatesError(t *testing.T) {
	s := New(zerolog.Nop())
	boom := errors.New("boom")

	err := s.RunNow(&countingJob{name: "failing", err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "idle"}))

	assert.NotPanics(t, func() {
		s.Start()
		s.Stop()
	})
}
