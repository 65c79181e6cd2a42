package storage

import (
	"errors"

	"github.com/minsukang/newlife/internal/models"
)

// ErrNoProfile is returned by GetProfile when signup has not happened yet.
var ErrNoProfile = errors.New("no profile stored")

// Provider is the storage contract shared by the JSON and SQLite backends.
//
// Writes replace the full record for their scope in one operation; callers
// never observe a partial write. Concurrent writers are not coordinated:
// the last write wins. That is acceptable for a single-user, single-device
// application and is surfaced by the doctor command rather than guarded
// against.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Daily records
	// GetDailyData returns the stored record for the date, or a fresh
	// default for a date never written. The default is not persisted.
	GetDailyData(date string) (models.DailyData, error)
	// SaveDailyData inserts or replaces the entry at data.Date, leaving
	// every other date and the profile untouched.
	SaveDailyData(models.DailyData) error
	GetAllDailyData() (map[string]models.DailyData, error)

	// Utils
	GetConfigPath() string
}
