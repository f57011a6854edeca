package cash_flows

import (
	"fmt"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/rs/zerolog"
)

// Service forecasts cash flow for stored profiles
type Service struct {
	repo profiles.RepositoryInterface
	log  zerolog.Logger
}

// NewService creates a new cash flow forecast service
func NewService(repo profiles.RepositoryInterface, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "cash_flows").Logger(),
	}
}

// Forecast projects the profiles listed in ids, or every profile when ids is
// empty. months <= 0 falls back to DefaultMonths.
func (s *Service) Forecast(ids []int64, months int) ([]Projection, error) {
	if months <= 0 {
		months = DefaultMonths
	}

	var (
		selected []domain.FinancialProfile
		err      error
	)
	if len(ids) > 0 {
		selected, err = s.repo.GetByIDs(ids)
	} else {
		selected, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	s.log.Debug().
		Int("requested", len(ids)).
		Int("profiles", len(selected)).
		Int("months", months).
		Msg("Forecasting cash flow")

	return ProjectAll(selected, months), nil
}
