package di

import (
	"fmt"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/reliability"
	"github.com/aristath/finwell/internal/scheduler"
	"github.com/rs/zerolog"
)

// Job is a schedulable unit of work
type Job = scheduler.Job

// WALCheckSchedule runs the WAL probe every hour on the hour
const WALCheckSchedule = "0 0 * * * *"

// RegisterJobs creates the maintenance jobs and adds them to sched.
// Jobs that need a database are skipped for the in-memory store.
func RegisterJobs(sched *scheduler.Scheduler, container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	if container == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}

	instances := &JobInstances{}
	if container.ProfilesDB == nil {
		return instances, nil
	}

	walCheck := scheduler.NewCheckWALCheckpointsJob(container.Databases())
	walCheck.SetLogger(log)
	if err := sched.AddJob(WALCheckSchedule, walCheck); err != nil {
		return nil, err
	}
	instances.CheckWALCheckpoints = walCheck

	maintenance := reliability.NewDailyMaintenanceJob(container.Databases(), cfg.DataDir, log)
	if err := sched.AddJob(cfg.MaintenanceSchedule, maintenance); err != nil {
		return nil, err
	}
	instances.DailyMaintenance = maintenance

	if container.BackupService != nil {
		backup := reliability.NewBackupProfilesJob(container.BackupService, cfg.Backup.RetentionDays, log)
		if err := sched.AddJob(cfg.Backup.Schedule, backup); err != nil {
			return nil, err
		}
		instances.BackupProfiles = backup
	}

	log.Info().Strs("jobs", sched.JobNames()).Msg("Jobs registered")
	return instances, nil
}
