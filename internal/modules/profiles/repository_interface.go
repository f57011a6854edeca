// Package profiles stores submitted financial profiles.
//
// The store is append-only: a profile is written once with a store-assigned
// id and createdAt and is read back by the analysis tools. Ids come from a
// monotonic allocator and are never reused.
package profiles

import (
	"errors"

	"github.com/aristath/finwell/internal/domain"
)

// ErrNotFound is returned when a profile id does not exist
var ErrNotFound = errors.New("profile not found")

// RepositoryInterface is the profile store used by the services
type RepositoryInterface interface {
	// Create stores a profile and returns the assigned id
	Create(p domain.FinancialProfile) (int64, error)
	// GetAll returns every profile in id order
	GetAll() ([]domain.FinancialProfile, error)
	// GetByIDs returns the listed profiles in id order, skipping unknown ids
	GetByIDs(ids []int64) ([]domain.FinancialProfile, error)
	// FindMostRecent returns the profile with the latest createdAt, or nil when the store is empty
	FindMostRecent() (*domain.FinancialProfile, error)
	// Count returns the number of stored profiles
	Count() (int, error)
}

// Compile-time checks
var (
	_ RepositoryInterface = (*Repository)(nil)
	_ RepositoryInterface = (*InMemoryRepository)(nil)
)
