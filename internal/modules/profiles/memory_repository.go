package profiles

import (
	"sort"
	"sync"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/rs/zerolog"
)

// InMemoryRepository keeps profiles in process memory.
// Used by the MCP binary when no data directory is configured, and by tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]domain.FinancialProfile
	nextID   int64
	now      func() time.Time
	log      zerolog.Logger
}

// NewInMemoryRepository creates an empty in-memory profile store
func NewInMemoryRepository(log zerolog.Logger) *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[int64]domain.FinancialProfile),
		nextID:   1,
		now:      time.Now,
		log:      log.With().Str("repo", "profiles_memory").Logger(),
	}
}

// SetClock overrides the time source used for createdAt
func (r *InMemoryRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Create stores a copy of p under the next id
func (r *InMemoryRepository) Create(p domain.FinancialProfile) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.Normalize()
	p.ID = r.nextID
	p.CreatedAt = FormatCreatedAt(r.now())
	r.nextID++
	r.profiles[p.ID] = p

	r.log.Debug().Int64("id", p.ID).Str("name", p.Name).Msg("Profile saved")
	return p.ID, nil
}

// GetAll returns every profile in id order
func (r *InMemoryRepository) GetAll() ([]domain.FinancialProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FinancialProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByIDs returns the listed profiles in id order, skipping unknown ids
func (r *InMemoryRepository) GetByIDs(ids []int64) ([]domain.FinancialProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	out := []domain.FinancialProfile{}
	for _, id := range ids {
		p, ok := r.profiles[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindMostRecent returns the profile with the latest createdAt, higher id on ties
func (r *InMemoryRepository) FindMostRecent() (*domain.FinancialProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.FinancialProfile
	for id := range r.profiles {
		p := r.profiles[id]
		if latest == nil ||
			p.CreatedAt > latest.CreatedAt ||
			(p.CreatedAt == latest.CreatedAt && p.ID > latest.ID) {
			latest = &p
		}
	}
	return latest, nil
}

// Count returns the number of stored profiles
func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles), nil
}

// Delete removes a profile; its id is not handed out again
func (r *InMemoryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}
