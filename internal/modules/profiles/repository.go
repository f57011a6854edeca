package profiles

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/utils"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Repository persists profiles in profiles.db.
// Each row holds the profile document as JSON next to the columns the store
// itself owns (id, name, created_at).
type Repository struct {
	db  *sql.DB
	now func() time.Time
	log zerolog.Logger
}

// NewRepository creates a new profile repository.
//
// Parameters:
//   - db: Database connection to profiles.db
//   - log: Structured logger
//
// Returns:
//   - *Repository: Initialized repository instance
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
		log: log.With().Str("repo", "profiles").Logger(),
	}
}

// SetClock overrides the time source used for createdAt
func (r *Repository) SetClock(now func() time.Time) {
	r.now = now
}

// Create inserts a profile. The id comes from SQLite AUTOINCREMENT and the
// createdAt stamp from the repository clock; values already on p are ignored.
//
// Parameters:
//   - p: Profile to store
//
// Returns:
//   - int64: Assigned id
//   - error: Error if encoding or the insert fails
func (r *Repository) Create(p domain.FinancialProfile) (int64, error) {
	p.ID = 0
	p.CreatedAt = ""
	p.Normalize()

	doc, err := json.Marshal(p)
	if err != nil {
		return 0, fmt.Errorf("failed to encode profile: %w", err)
	}

	createdAt := FormatCreatedAt(r.now())
	result, err := r.db.Exec(
		"INSERT INTO profiles (name, created_at, document) VALUES (?, ?, ?)",
		p.Name, createdAt, string(doc),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read profile id: %w", err)
	}

	r.log.Info().Int64("id", id).Str("name", p.Name).Msg("Profile saved")
	return id, nil
}

// GetAll returns every profile in id order
func (r *Repository) GetAll() ([]domain.FinancialProfile, error) {
	done := utils.MeasureDBQuery("profiles.get_all", r.log)

	rows, err := r.db.Query("SELECT id, created_at, document FROM profiles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	result, err := r.scanProfiles(rows)
	if err != nil {
		return nil, err
	}
	done(int64(len(result)))
	return result, nil
}

// GetByIDs returns the listed profiles in id order. Unknown ids are skipped.
func (r *Repository) GetByIDs(ids []int64) ([]domain.FinancialProfile, error) {
	if len(ids) == 0 {
		return []domain.FinancialProfile{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, created_at, document FROM profiles WHERE id IN (%s) ORDER BY id",
		strings.Join(placeholders, ","),
	)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles by id: %w", err)
	}
	defer rows.Close()

	return r.scanProfiles(rows)
}

// GetByID returns one profile or ErrNotFound
func (r *Repository) GetByID(id int64) (*domain.FinancialProfile, error) {
	row := r.db.QueryRow("SELECT id, created_at, document FROM profiles WHERE id = ?", id)
	p, err := r.scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindMostRecent returns the profile with the latest createdAt.
// Equal stamps resolve to the higher id. Returns nil, nil when the store is empty.
func (r *Repository) FindMostRecent() (*domain.FinancialProfile, error) {
	row := r.db.QueryRow("SELECT id, created_at, document FROM profiles ORDER BY created_at DESC, id DESC LIMIT 1")
	p, err := r.scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Count returns the number of stored profiles
func (r *Repository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

// Delete removes a profile. The id is not reused by later inserts.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete profile %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info().Int64("id", id).Msg("Profile deleted")
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanProfile(row rowScanner) (*domain.FinancialProfile, error) {
	var (
		id        int64
		createdAt string
		doc       string
	)
	if err := row.Scan(&id, &createdAt, &doc); err != nil {
		return nil, err
	}

	var p domain.FinancialProfile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %d: %w", id, err)
	}
	p.ID = id
	p.CreatedAt = createdAt
	p.Normalize()
	return &p, nil
}

func (r *Repository) scanProfiles(rows *sql.Rows) ([]domain.FinancialProfile, error) {
	profiles := []domain.FinancialProfile{}
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}
