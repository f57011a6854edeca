package testing

import (
	"sort"
	"sync"

	"github.com/aristath/finwell/internal/domain"
)

// MockProfileRepository is an in-memory profile store with error injection
type MockProfileRepository struct {
	mu       sync.Mutex
	profiles []domain.FinancialProfile
	err      error
	nextID   int64
}

// NewMockProfileRepository creates a mock profile repository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{nextID: 1}
}

// SetProfiles replaces the stored profiles, assigning ids to those without one
func (m *MockProfileRepository) SetProfiles(profiles []domain.FinancialProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = nil
	for _, p := range profiles {
		if p.ID == 0 {
			p.ID = m.nextID
		}
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
		m.profiles = append(m.profiles, p)
	}
}

// SetError makes every subsequent call fail with err
func (m *MockProfileRepository) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Create stores a profile and returns its id
func (m *MockProfileRepository) Create(p domain.FinancialProfile) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	p.ID = m.nextID
	m.nextID++
	if p.CreatedAt == "" {
		p.CreatedAt = "2025-10-01T09:00:00+02:00"
	}
	m.profiles = append(m.profiles, p)
	return p.ID, nil
}

// GetAll returns all profiles in id order
func (m *MockProfileRepository) GetAll() ([]domain.FinancialProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.FinancialProfile, len(m.profiles))
	copy(out, m.profiles)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByIDs returns the profiles whose id is listed, in id order
func (m *MockProfileRepository) GetByIDs(ids []int64) ([]domain.FinancialProfile, error) {
	all, err := m.GetAll()
	if err != nil {
		return nil, err
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []domain.FinancialProfile{}
	for _, p := range all {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindMostRecent returns the profile with the latest createdAt, nil when empty
func (m *MockProfileRepository) FindMostRecent() (*domain.FinancialProfile, error) {
	all, err := m.GetAll()
	if err != nil {
		return nil, err
	}
	var latest *domain.FinancialProfile
	for i := range all {
		if latest == nil || all[i].CreatedAt >= latest.CreatedAt {
			latest = &all[i]
		}
	}
	return latest, nil
}

// Count returns the number of stored profiles
func (m *MockProfileRepository) Count() (int, error) {
	all, err := m.GetAll()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
