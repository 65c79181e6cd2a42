package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/minsukang/newlife/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "newlife.json"))
}

func sampleDay(date string) models.DailyData {
	day := models.NewDailyData(date)
	day.Checklist.Worship = true
	day.Checklist.DawnPrayer = true
	day.ReadingLogs = []models.ReadingLog{
		{ID: "r1", BookTitle: "순전한 기독교", Pages: 42, Highlight: "...", CreatedAt: "2024-03-01T10:00:00Z"},
	}
	day.BibleLogs = []models.BibleLog{
		{ID: "b1", Book: "시편", Chapter: 23, ChapterCount: 1, CreatedAt: "2024-03-01T06:30:00Z"},
	}
	return day
}

func TestJSONStoreInit(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if _, err := os.Stat(store.GetConfigPath()); err != nil {
		t.Errorf("storage file was not created: %v", err)
	}

	if err := store.Init(); err == nil {
		t.Error("Init() on an existing file should fail")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	day := sampleDay("2024-03-01")
	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("SaveDailyData() failed: %v", err)
	}

	got, err := store.GetDailyData("2024-03-01")
	if err != nil {
		t.Fatalf("GetDailyData() failed: %v", err)
	}

	if !reflect.DeepEqual(got, day) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, day)
	}
}

func TestJSONStoreDefaultSynthesis(t *testing.T) {
	store := newTestJSONStore(t)

	day, err := store.GetDailyData("2024-05-05")
	if err != nil {
		t.Fatalf("GetDailyData() failed: %v", err)
	}

	if day.Date != "2024-05-05" {
		t.Errorf("date = %q, want 2024-05-05", day.Date)
	}
	if day.Checklist.Completed() != 0 {
		t.Errorf("default checklist has %d completed flags, want 0", day.Checklist.Completed())
	}
	if len(day.ReadingLogs) != 0 || len(day.BibleLogs) != 0 {
		t.Error("default record should have empty log sequences")
	}

	// The synthesized default must not be persisted
	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if _, ok := all["2024-05-05"]; ok {
		t.Error("GetDailyData persisted a synthesized default record")
	}
}

func TestJSONStoreWriteIsolation(t *testing.T) {
	store := newTestJSONStore(t)

	profile := models.UserProfile{
		ID:       "p1",
		UserID:   "hana",
		Password: "secret",
		Name:     "하나",
		Gender:   models.GenderFemale,
		Region:   models.RegionSeoul,
		JoinedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	d1 := sampleDay("2024-03-01")
	d2 := sampleDay("2024-03-02")
	d2.Checklist.Worship = false
	if err := store.SaveDailyData(d1); err != nil {
		t.Fatalf("SaveDailyData(d1) failed: %v", err)
	}
	if err := store.SaveDailyData(d2); err != nil {
		t.Fatalf("SaveDailyData(d2) failed: %v", err)
	}

	// Rewriting d1 must leave d2 and the profile untouched
	d1.Checklist.Exercise = true
	if err := store.SaveDailyData(d1); err != nil {
		t.Fatalf("SaveDailyData(d1 again) failed: %v", err)
	}

	gotD2, err := store.GetDailyData("2024-03-02")
	if err != nil {
		t.Fatalf("GetDailyData(d2) failed: %v", err)
	}
	if gotD2.Checklist.Worship {
		t.Error("writing d1 altered d2")
	}

	gotProfile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if !reflect.DeepEqual(gotProfile, profile) {
		t.Errorf("writing daily data altered the profile:\ngot  %+v\nwant %+v", gotProfile, profile)
	}
}

func TestJSONStoreIdempotentSave(t *testing.T) {
	store := newTestJSONStore(t)

	day := sampleDay("2024-03-01")
	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	first, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read storage file: %v", err)
	}

	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	second, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read storage file: %v", err)
	}

	if string(first) != string(second) {
		t.Error("saving the same record twice changed the persisted state")
	}
}

func TestJSONStoreSaveWithoutDate(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.SaveDailyData(models.DailyData{}); err == nil {
		t.Error("SaveDailyData with an empty date should fail")
	}
}

func TestJSONStoreMissingFile(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Load(); err != nil {
		t.Errorf("Load() on a missing file should not fail, got: %v", err)
	}

	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty mapping, got %d entries", len(all))
	}

	if _, err := store.GetProfile(); !errors.Is(err, ErrNoProfile) {
		t.Errorf("GetProfile() = %v, want ErrNoProfile", err)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	store := newTestJSONStore(t)

	corrupt := []byte("{this is not json")
	if err := os.MkdirAll(filepath.Dir(store.GetConfigPath()), 0700); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(store.GetConfigPath(), corrupt, 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	// Reads fall back to an empty record
	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() on corrupt file failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty mapping from corrupt file, got %d entries", len(all))
	}

	// The corrupt payload is preserved in a sidecar file
	entries, err := os.ReadDir(filepath.Dir(store.GetConfigPath()))
	if err != nil {
		t.Fatalf("failed to read config dir: %v", err)
	}
	var sidecar string
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".corrupt-") {
			sidecar = filepath.Join(filepath.Dir(store.GetConfigPath()), entry.Name())
		}
	}
	if sidecar == "" {
		t.Fatal("corrupt payload was not preserved to a sidecar file")
	}
	preserved, err := os.ReadFile(sidecar)
	if err != nil {
		t.Fatalf("failed to read sidecar: %v", err)
	}
	if string(preserved) != string(corrupt) {
		t.Error("sidecar does not contain the original corrupt payload")
	}

	// A save after the fallback starts from the empty record
	if err := store.SaveDailyData(sampleDay("2024-03-01")); err != nil {
		t.Fatalf("SaveDailyData() after corruption failed: %v", err)
	}
	all, err = store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 entry after save, got %d", len(all))
	}
}

func TestJSONStoreNullDailyData(t *testing.T) {
	store := newTestJSONStore(t)

	raw, err := json.Marshal(map[string]interface{}{"dailyData": nil})
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(store.GetConfigPath(), raw, 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if all == nil {
		t.Error("nil dailyData mapping was not re-initialized")
	}
}
