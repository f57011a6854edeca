package analysis

import (
	"context"
	"fmt"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/aristath/finwell/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProfileSource produces generated profile text, typically JSON
type ProfileSource interface {
	Generate(ctx context.Context) (string, error)
}

// Service saves profiles and analyses them
type Service struct {
	repo   profiles.RepositoryInterface
	source ProfileSource
	log    zerolog.Logger
}

// NewService creates a new analysis service. source may be nil when
// generated profiles are not offered.
func NewService(repo profiles.RepositoryInterface, source ProfileSource, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		source: source,
		log:    log.With().Str("service", "analysis").Logger(),
	}
}

// Submit validates and saves a profile, then analyses it
func (s *Service) Submit(p domain.FinancialProfile) (*Report, error) {
	log := s.log.With().Str("request_id", uuid.NewString()).Logger()

	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	p.ID = id

	report := AnalyzeProfile(p)
	log.Info().
		Int64("profile_id", id).
		Str("risk_level", string(report.RiskLevel)).
		Msg("Profile saved and analysed")
	return &report, nil
}

// GenerateAndAnalyze asks the source for a profile, saves it and analyses it.
// Anything wrong with the generated payload yields ErrGenerationFailed and
// nothing is saved.
func (s *Service) GenerateAndAnalyze(ctx context.Context) (*Report, error) {
	log := s.log.With().Str("request_id", uuid.NewString()).Logger()

	if s.source == nil {
		return nil, fmt.Errorf("%w: no profile source configured", ErrGenerationFailed)
	}

	text, err := s.source.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Profile generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	generated, err := ParseGenerated(text)
	if err != nil {
		log.Warn().Err(err).Int("payload_bytes", len(text)).Msg("Generated profile rejected")
		return nil, err
	}

	id, err := s.repo.Create(generated.Profile())
	if err != nil {
		return nil, fmt.Errorf("failed to save generated profile: %w", err)
	}

	report := AnalyzeGenerated(*generated)
	report.ProfileID = id
	log.Info().
		Int64("profile_id", id).
		Str("risk_level", string(report.RiskLevel)).
		Msg("Generated profile saved and analysed")
	return &report, nil
}

// List returns every stored profile
func (s *Service) List() ([]domain.FinancialProfile, error) {
	return s.repo.GetAll()
}

// Latest returns the most recently saved profile or profiles.ErrNotFound
func (s *Service) Latest() (*domain.FinancialProfile, error) {
	p, err := s.repo.FindMostRecent()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, profiles.ErrNotFound
	}
	return p, nil
}
