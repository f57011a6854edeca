package di

import (
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates the profile repository over the configured store
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	if container.ProfilesDB == nil {
		container.ProfileRepo = profiles.NewInMemoryRepository(log)
		return nil
	}

	container.ProfileRepo = profiles.NewRepository(container.ProfilesDB.Conn(), log)
	return nil
}
