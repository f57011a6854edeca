package debt

import (
	"fmt"

	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/rs/zerolog"
)

// ProfilePlan is the repayment plan of one stored profile
type ProfilePlan struct {
	ProfileID int64  `json:"profileId"`
	User      string `json:"user"`
	Plan      Plan   `json:"plan"`
}

// Service ranks the debts of every stored profile
type Service struct {
	repo profiles.RepositoryInterface
	log  zerolog.Logger
}

// NewService creates a new debt repayment service
func NewService(repo profiles.RepositoryInterface, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "debt").Logger(),
	}
}

// PlanAll ranks each stored profile's debts with the given strategy
func (s *Service) PlanAll(strategy Strategy) ([]ProfilePlan, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	out := make([]ProfilePlan, 0, len(all))
	for _, p := range all {
		out = append(out, ProfilePlan{
			ProfileID: p.ID,
			User:      p.Name,
			Plan:      Rank(p.Debts, strategy),
		})
	}

	s.log.Debug().
		Str("strategy", string(strategy)).
		Int("profiles", len(out)).
		Msg("Debt repayment plans built")
	return out, nil
}
