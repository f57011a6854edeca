package server

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/aristath/finwell/internal/database"
	"github.com/aristath/finwell/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ProfileCounter is the slice of the profile store the status endpoint needs
type ProfileCounter interface {
	Count() (int, error)
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status        string  `json:"status"` // "healthy" or "degraded"
	UptimeSeconds int64   `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	ProfileCount  int     `json:"profile_count"`
	Timestamp     string  `json:"timestamp"`
}

// DatabaseStatsResponse describes one database file
type DatabaseStatsResponse struct {
	Name          string `json:"name"`
	SizeBytes     int64  `json:"size_bytes"`
	WALSizeBytes  int64  `json:"wal_size_bytes"`
	PageCount     int64  `json:"page_count"`
	FreelistCount int64  `json:"freelist_count"`
	Healthy       bool   `json:"healthy"`
}

// SystemHandlers serves the /api/system endpoints
type SystemHandlers struct {
	profiles  ProfileCounter
	databases map[string]*database.DB
	scheduler *scheduler.Scheduler
	startedAt time.Time
	log       zerolog.Logger

	// hostStats is swapped in tests to avoid sampling the real host
	hostStats func() (cpuPercent, memPercent float64)
}

// NewSystemHandlers creates the system handlers. sched may be nil.
func NewSystemHandlers(
	profiles ProfileCounter,
	databases map[string]*database.DB,
	sched *scheduler.Scheduler,
	log zerolog.Logger,
) *SystemHandlers {
	h := &SystemHandlers{
		profiles:  profiles,
		databases: databases,
		scheduler: sched,
		startedAt: time.Now(),
		log:       log.With().Str("handler", "system").Logger(),
	}
	h.hostStats = h.getSystemStats
	return h
}

// HandleSystemStatus returns uptime, host load and the profile count
// GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.hostStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Timestamp:     time.Now().Format(time.RFC3339),
	}

	count, err := h.profiles.Count()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to count profiles")
		response.Status = "degraded"
	}
	response.ProfileCount = count

	writeJSON(w, http.StatusOK, response, h.log)
}

// HandleDatabaseStats reports file sizes and health per database
// GET /api/system/database/stats
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.databases))
	for name := range h.databases {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := make([]DatabaseStatsResponse, 0, len(names))
	for _, name := range names {
		db := h.databases[name]
		stats, err := db.GetStats()
		if err != nil {
			h.log.Error().Err(err).Str("database", name).Msg("Failed to get database stats")
			http.Error(w, "Failed to get database stats", http.StatusInternalServerError)
			return
		}
		response = append(response, DatabaseStatsResponse{
			Name:          name,
			SizeBytes:     stats.SizeBytes,
			WALSizeBytes:  stats.WALSizeBytes,
			PageCount:     stats.PageCount,
			FreelistCount: stats.FreelistCount,
			Healthy:       db.QuickCheck(ctx) == nil,
		})
	}

	writeJSON(w, http.StatusOK, response, h.log)
}

// HandleListJobs lists the scheduled jobs
// GET /api/system/jobs
func (h *SystemHandlers) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := []string{}
	if h.scheduler != nil {
		jobs = h.scheduler.JobNames()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs}, h.log)
}

// HandleTriggerJob runs a scheduled job immediately
// POST /api/system/jobs/{name}
func (h *SystemHandlers) HandleTriggerJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.scheduler == nil {
		http.Error(w, "Scheduler not running", http.StatusServiceUnavailable)
		return
	}

	err := h.scheduler.RunByName(name)
	if errors.Is(err, scheduler.ErrUnknownJob) {
		http.Error(w, "Unknown job", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("job", name).Msg("Triggered job failed")
		http.Error(w, "Job failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "completed",
		"job":    name,
	}, h.log)
}

// getSystemStats calculates CPU and RAM usage percentages.
// CPU is sampled over 100ms to keep the call fast.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
