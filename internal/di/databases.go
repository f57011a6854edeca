package di

import (
	"fmt"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the profile store and applies its schema.
// The in-memory store needs no database.
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	if cfg.Store == config.StoreMemory {
		log.Info().Msg("Using in-memory profile store")
		return container, nil
	}

	// profiles.db - submitted financial profiles, append-only
	profilesDB, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileDurable,
		Name:    "profiles",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize profiles database: %w", err)
	}

	if err := profilesDB.Migrate(); err != nil {
		profilesDB.Close()
		return nil, fmt.Errorf("failed to apply schema to %s: %w", profilesDB.Name(), err)
	}
	container.ProfilesDB = profilesDB

	log.Info().Str("path", profilesDB.Path()).Msg("Profile database initialized and schema applied")

	return container, nil
}
