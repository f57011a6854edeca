package reliability

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/finwell/internal/database"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/disk"
)

const (
	// DefaultMinFreeBytes halts maintenance when the data volume drops below it
	DefaultMinFreeBytes = 500 * 1000 * 1000
	// LowFreeBytes triggers a warning
	LowFreeBytes = 5 * 1000 * 1000 * 1000

	maintenanceTimeout = 5 * time.Minute
	backupTimeout      = 10 * time.Minute
)

// DailyMaintenanceJob checks integrity, truncates the WAL and watches disk space
type DailyMaintenanceJob struct {
	databases    map[string]*database.DB
	dataDir      string
	minFreeBytes uint64
	log          zerolog.Logger
}

// NewDailyMaintenanceJob creates a new daily maintenance job
func NewDailyMaintenanceJob(databases map[string]*database.DB, dataDir string, log zerolog.Logger) *DailyMaintenanceJob {
	return &DailyMaintenanceJob{
		databases:    databases,
		dataDir:      dataDir,
		minFreeBytes: DefaultMinFreeBytes,
		log:          log.With().Str("job", "daily_maintenance").Logger(),
	}
}

// SetMinFreeBytes overrides the free space floor
func (j *DailyMaintenanceJob) SetMinFreeBytes(n uint64) {
	j.minFreeBytes = n
}

// Name returns the job name for scheduler
func (j *DailyMaintenanceJob) Name() string {
	return "daily_maintenance"
}

// Run executes the daily maintenance job
func (j *DailyMaintenanceJob) Run() error {
	j.log.Info().Msg("Starting daily maintenance")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	for name, db := range j.databases {
		if err := db.HealthCheck(ctx); err != nil {
			j.log.Error().
				Str("database", name).
				Err(err).
				Msg("CRITICAL: Database integrity check failed")
			return fmt.Errorf("integrity check of %s failed: %w", name, err)
		}

		if err := db.WALCheckpoint("TRUNCATE"); err != nil {
			j.log.Warn().
				Str("database", name).
				Err(err).
				Msg("WAL checkpoint failed")
		}

		if stats, err := db.GetStats(); err == nil {
			j.log.Info().
				Str("database", name).
				Str("size", humanize.Bytes(uint64(stats.SizeBytes))).
				Str("wal_size", humanize.Bytes(uint64(stats.WALSizeBytes))).
				Int64("free_pages", stats.FreelistCount).
				Msg("Database metrics")
		}
	}

	if err := j.checkDiskSpace(); err != nil {
		return err
	}

	j.log.Info().
		Dur("duration_ms", time.Since(startTime)).
		Msg("Daily maintenance completed successfully")

	return nil
}

func (j *DailyMaintenanceJob) checkDiskSpace() error {
	usage, err := disk.Usage(j.dataDir)
	if err != nil {
		return fmt.Errorf("failed to stat filesystem: %w", err)
	}

	j.log.Debug().Str("free", humanize.Bytes(usage.Free)).Msg("Disk space check")

	if usage.Free < j.minFreeBytes {
		j.log.Error().
			Str("free", humanize.Bytes(usage.Free)).
			Msg("CRITICAL: Insufficient disk space")
		return fmt.Errorf("only %s free on %s", humanize.Bytes(usage.Free), j.dataDir)
	}
	if usage.Free < LowFreeBytes {
		j.log.Warn().
			Str("free", humanize.Bytes(usage.Free)).
			Msg("Disk space running low")
	}
	return nil
}

// BackupProfilesJob uploads a snapshot and rotates old ones
type BackupProfilesJob struct {
	service       *BackupService
	retentionDays int
	log           zerolog.Logger
}

// NewBackupProfilesJob creates the backup job
func NewBackupProfilesJob(service *BackupService, retentionDays int, log zerolog.Logger) *BackupProfilesJob {
	return &BackupProfilesJob{
		service:       service,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "backup_profiles").Logger(),
	}
}

// Name returns the job name for scheduler
func (j *BackupProfilesJob) Name() string {
	return "backup_profiles"
}

// Run executes the backup
func (j *BackupProfilesJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if _, err := j.service.CreateAndUploadBackup(ctx); err != nil {
		return err
	}

	// rotation failures never fail a completed backup
	if _, err := j.service.RotateOldBackups(ctx, j.retentionDays); err != nil {
		j.log.Warn().Err(err).Msg("Backup rotation failed")
	}
	return nil
}
