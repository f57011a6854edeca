package di

import (
	"fmt"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/scheduler"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container
// Order of operations:
// 1. Initialize databases
// 2. Initialize repositories
// 3. Initialize services
// 4. Register jobs (skipped when sched is nil)
func Wire(cfg *config.Config, log zerolog.Logger, sched *scheduler.Scheduler) (*Container, *JobInstances, error) {
	container, err := InitializeDatabases(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize databases: %w", err)
	}

	if err := InitializeRepositories(container, log); err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := InitializeServices(container, cfg, log); err != nil {
		container.Close()
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	jobs := &JobInstances{}
	if sched != nil {
		jobs, err = RegisterJobs(sched, container, cfg, log)
		if err != nil {
			container.Close()
			return nil, nil, fmt.Errorf("failed to register jobs: %w", err)
		}
	}

	log.Info().Msg("Dependency injection wiring completed successfully")

	return container, jobs, nil
}
