package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/minsukang/newlife/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "newlife.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "newlife.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() without init should fail")
	}
}

func TestSQLiteStoreProfile(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := store.GetProfile(); !errors.Is(err, ErrNoProfile) {
		t.Errorf("GetProfile() on empty store = %v, want ErrNoProfile", err)
	}

	profile := models.UserProfile{
		ID:          "p1",
		UserID:      "hana",
		Password:    "secret",
		Name:        "하나",
		Age:         "29",
		Affiliation: "청년부",
		PhoneNumber: "010-1234-5678",
		Gender:      models.GenderFemale,
		Region:      models.RegionGyeonggi,
		JoinedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if !reflect.DeepEqual(got, profile) {
		t.Errorf("profile mismatch:\ngot  %+v\nwant %+v", got, profile)
	}

	// There is a single profile slot; saving again replaces it
	profile.Name = "하나둘"
	profile.LastLoginIP = "127.0.0.1"
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() replace failed: %v", err)
	}
	got, err = store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if got.Name != "하나둘" || got.LastLoginIP != "127.0.0.1" {
		t.Errorf("profile was not replaced: %+v", got)
	}
}

func TestSQLiteStoreDailyDataRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	day := models.NewDailyData("2024-03-01")
	day.Checklist.Worship = true
	day.Checklist.BedsidePrep = true
	day.ReadingLogs = []models.ReadingLog{
		{ID: "r2", BookTitle: "팡세", Pages: 12, Highlight: "", CreatedAt: "2024-03-01T21:00:00Z"},
		{ID: "r1", BookTitle: "순전한 기독교", Pages: 30, Highlight: "...", CreatedAt: "2024-03-01T10:00:00Z"},
	}
	day.BibleLogs = []models.BibleLog{
		{ID: "b1", Book: "창세기", Chapter: 1, ChapterCount: 3, CreatedAt: "2024-03-01T06:00:00Z"},
	}

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

func TestSQLiteStoreLogOrderPreserved(t *testing.T) {
	store := newTestSQLiteStore(t)

	day := models.NewDailyData("2024-03-01")
	// Newest entry sits first; the stored order must survive a rewrite.
	day.BibleLogs = []models.BibleLog{
		{ID: "b3", Book: "요한복음", Chapter: 3, ChapterCount: 1, CreatedAt: "2024-03-01T22:00:00Z"},
		{ID: "b2", Book: "시편", Chapter: 23, ChapterCount: 1, CreatedAt: "2024-03-01T12:00:00Z"},
		{ID: "b1", Book: "창세기", Chapter: 1, ChapterCount: 1, CreatedAt: "2024-03-01T06:00:00Z"},
	}
	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("SaveDailyData() failed: %v", err)
	}

	// Remove the middle entry and save again
	day.BibleLogs = append(day.BibleLogs[:1], day.BibleLogs[2:]...)
	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("SaveDailyData() rewrite failed: %v", err)
	}

	got, err := store.GetDailyData("2024-03-01")
	if err != nil {
		t.Fatalf("GetDailyData() failed: %v", err)
	}
	if len(got.BibleLogs) != 2 {
		t.Fatalf("got %d bible logs, want 2", len(got.BibleLogs))
	}
	if got.BibleLogs[0].ID != "b3" || got.BibleLogs[1].ID != "b1" {
		t.Errorf("log order not preserved: %q, %q", got.BibleLogs[0].ID, got.BibleLogs[1].ID)
	}
}

func TestSQLiteStoreDefaultSynthesis(t *testing.T) {
	store := newTestSQLiteStore(t)

	day, err := store.GetDailyData("2024-05-05")
	if err != nil {
		t.Fatalf("GetDailyData() failed: %v", err)
	}
	if day.Date != "2024-05-05" || day.Checklist.Completed() != 0 {
		t.Errorf("unexpected default record: %+v", day)
	}

	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if len(all) != 0 {
		t.Error("GetDailyData persisted a synthesized default record")
	}
}

func TestSQLiteStoreGetAllDailyData(t *testing.T) {
	store := newTestSQLiteStore(t)

	d1 := models.NewDailyData("2024-03-01")
	d1.Checklist.Worship = true
	d2 := models.NewDailyData("2024-03-02")
	d2.ReadingLogs = []models.ReadingLog{
		{ID: "r1", BookTitle: "팡세", Pages: 7, CreatedAt: "2024-03-02T20:00:00Z"},
	}
	for _, day := range []models.DailyData{d1, d2} {
		if err := store.SaveDailyData(day); err != nil {
			t.Fatalf("SaveDailyData(%s) failed: %v", day.Date, err)
		}
	}

	all, err := store.GetAllDailyData()
	if err != nil {
		t.Fatalf("GetAllDailyData() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d dates, want 2", len(all))
	}
	if !all["2024-03-01"].Checklist.Worship {
		t.Error("2024-03-01 checklist not restored")
	}
	if len(all["2024-03-02"].ReadingLogs) != 1 {
		t.Error("2024-03-02 reading logs not restored")
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newlife.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	day := models.NewDailyData("2024-03-01")
	day.Checklist.DawnPrayer = true
	if err := store.SaveDailyData(day); err != nil {
		t.Fatalf("SaveDailyData() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetDailyData("2024-03-01")
	if err != nil {
		t.Fatalf("GetDailyData() failed: %v", err)
	}
	if !got.Checklist.DawnPrayer {
		t.Error("data did not survive reopen")
	}
}
