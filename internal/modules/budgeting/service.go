package budgeting

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/rs/zerolog"
)

// TopCategoryCount is how many spend categories the report lists
const TopCategoryCount = 5

// ErrNoProfile is returned when there is no stored profile to budget for
var ErrNoProfile = errors.New("no saved financial profile found")

// Report is the full budgeting analysis of one profile
type Report struct {
	ProfileID          int64                         `json:"profileId"`
	Name               string                        `json:"name"`
	Plan               AllocationPlan                `json:"plan"`
	PayDates           []PayDatePrediction           `json:"payDates"`
	TopCategories      []domain.TransactionAggregate `json:"topCategories"`
	RecurringMerchants []domain.RecurringMerchant    `json:"recurringMerchants"`
	GoalSavingsTotal   float64                       `json:"goalSavingsThisMonth"`
	TotalAllocation    float64                       `json:"totalAllocation"`
	FinalRemaining     float64                       `json:"finalRemaining"`
}

// BuildReport runs the allocator and assembles the supporting listings
func BuildReport(p domain.FinancialProfile, now time.Time) Report {
	plan := Allocate(p, now)

	categories := make([]domain.TransactionAggregate, len(p.TransactionAggregates))
	copy(categories, p.TransactionAggregates)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].TotalAmount > categories[j].TotalAmount
	})
	if len(categories) > TopCategoryCount {
		categories = categories[:TopCategoryCount]
	}

	merchants := make([]domain.RecurringMerchant, len(p.RecurringMerchants))
	copy(merchants, p.RecurringMerchants)
	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Amount > merchants[j].Amount
	})

	return Report{
		ProfileID:          p.ID,
		Name:               p.Name,
		Plan:               plan,
		PayDates:           PredictPayDates(p.PayDates, now),
		TopCategories:      categories,
		RecurringMerchants: merchants,
		GoalSavingsTotal:   plan.TotalGoalSavings(),
		TotalAllocation:    plan.TotalAllocation(),
		FinalRemaining:     plan.FinalRemaining(),
	}
}

// Service budgets for the most recently saved profile
type Service struct {
	repo profiles.RepositoryInterface
	now  func() time.Time
	log  zerolog.Logger
}

// NewService creates a new budgeting service
func NewService(repo profiles.RepositoryInterface, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With().Str("service", "budgeting").Logger(),
	}
}

// SetClock overrides the time source for month labels and pay-date checks
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// AnalyzeLatest builds the budget report for the most recent profile
func (s *Service) AnalyzeLatest() (*Report, error) {
	latest, err := s.repo.FindMostRecent()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest profile: %w", err)
	}
	if latest == nil {
		return nil, ErrNoProfile
	}

	report := BuildReport(*latest, s.now())

	s.log.Debug().
		Int64("profile_id", latest.ID).
		Bool("has_surplus", report.Plan.HasSurplus).
		Float64("allocatable_surplus", report.Plan.AllocatableSurplus).
		Msg("Budget built")

	return &report, nil
}
