package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minsukang/newlife/internal/logger"
	"github.com/minsukang/newlife/internal/models"
)

// JSONStore persists the whole application record as a single JSON document.
//
// Every operation performs a full read of the document, applies its change,
// and writes the document back. That keeps independent call sites consistent
// with each other at the cost of last-write-wins between concurrent
// processes.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.NewAppData())
}

// Load verifies the storage file is usable. A missing or unparsable file is
// not an error here: reads fall back to an empty record, so a fresh
// installation works without an explicit init.
func (s *JSONStore) Load() error {
	_, err := s.read()
	return err
}

func (s *JSONStore) Close() error {
	return nil
}

// read returns the current persisted record. A missing file yields an empty
// record. An unparsable file also yields an empty record, but the raw payload
// is preserved to a sidecar file first so the next write cannot silently
// destroy it.
func (s *JSONStore) read() (models.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewAppData(), nil
		}
		return models.AppData{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.preserveCorrupt(raw)
		logger.Warn("Storage file is not valid JSON, starting from an empty record", "path", s.path, "error", err)
		return models.NewAppData(), nil
	}

	if data.DailyData == nil {
		data.DailyData = make(map[string]models.DailyData)
	}

	return data, nil
}

// preserveCorrupt copies an unparsable payload next to the storage file.
func (s *JSONStore) preserveCorrupt(raw []byte) {
	sidecar := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(sidecar, raw, 0600); err != nil {
		logger.Error("Failed to preserve corrupt storage payload", "path", sidecar, "error", err)
		return
	}
	logger.Warn("Preserved corrupt storage payload", "path", sidecar)
}

func (s *JSONStore) write(data models.AppData) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, out, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	data, err := s.read()
	if err != nil {
		return models.UserProfile{}, err
	}
	if data.Profile == nil {
		return models.UserProfile{}, ErrNoProfile
	}
	return *data.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Profile = &profile
	return s.write(data)
}

func (s *JSONStore) GetDailyData(date string) (models.DailyData, error) {
	data, err := s.read()
	if err != nil {
		return models.DailyData{}, err
	}
	if day, ok := data.DailyData[date]; ok {
		return day, nil
	}
	return models.NewDailyData(date), nil
}

func (s *JSONStore) SaveDailyData(day models.DailyData) error {
	if day.Date == "" {
		return fmt.Errorf("daily data has no date")
	}
	data, err := s.read()
	if err != nil {
		return err
	}
	data.DailyData[day.Date] = day
	return s.write(data)
}

func (s *JSONStore) GetAllDailyData() (map[string]models.DailyData, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.DailyData, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
