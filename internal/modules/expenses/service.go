package expenses

import (
	"fmt"

	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/rs/zerolog"
)

// Service analyses the spending of every stored profile
type Service struct {
	repo profiles.RepositoryInterface
	log  zerolog.Logger
}

// NewService creates a new expense analysis service
func NewService(repo profiles.RepositoryInterface, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "expenses").Logger(),
	}
}

// AnalyzeAll returns one Analysis per stored profile, in id order
func (s *Service) AnalyzeAll() ([]Analysis, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	out := make([]Analysis, 0, len(all))
	for _, p := range all {
		out = append(out, Analyze(p))
	}

	s.log.Debug().Int("profiles", len(out)).Msg("Expenses analysed")
	return out, nil
}
