package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/minsukang/newlife/internal/models"
)

// SQLiteStore is the relational backend behind the same Provider contract as
// JSONStore. Daily records are split across a checklist table and two log
// tables; SaveDailyData replaces all three scopes for the date in one
// transaction so callers still see whole-record replacement.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const checklistColumns = `dawn_prayer, morning_prayer, noon_prayer, afternoon_prayer,
	night_prayer, worship, exercise, recitation,
	cleaning, organization, recycling, hygiene,
	door_light_check, environment_check, slow_chewing, bedside_prep`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profile (
		slot INTEGER PRIMARY KEY CHECK (slot = 1),
		id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		age TEXT NOT NULL DEFAULT '',
		affiliation TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT '',
		joined_at TEXT NOT NULL,
		last_login_ip TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS daily_checklists (
		date TEXT PRIMARY KEY,
		dawn_prayer INTEGER NOT NULL DEFAULT 0,
		morning_prayer INTEGER NOT NULL DEFAULT 0,
		noon_prayer INTEGER NOT NULL DEFAULT 0,
		afternoon_prayer INTEGER NOT NULL DEFAULT 0,
		night_prayer INTEGER NOT NULL DEFAULT 0,
		worship INTEGER NOT NULL DEFAULT 0,
		exercise INTEGER NOT NULL DEFAULT 0,
		recitation INTEGER NOT NULL DEFAULT 0,
		cleaning INTEGER NOT NULL DEFAULT 0,
		organization INTEGER NOT NULL DEFAULT 0,
		recycling INTEGER NOT NULL DEFAULT 0,
		hygiene INTEGER NOT NULL DEFAULT 0,
		door_light_check INTEGER NOT NULL DEFAULT 0,
		environment_check INTEGER NOT NULL DEFAULT 0,
		slow_chewing INTEGER NOT NULL DEFAULT 0,
		bedside_prep INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS reading_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		position INTEGER NOT NULL,
		book_title TEXT NOT NULL,
		pages INTEGER NOT NULL DEFAULT 0,
		highlight TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bible_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		position INTEGER NOT NULL,
		book TEXT NOT NULL,
		chapter INTEGER NOT NULL DEFAULT 0,
		chapter_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reading_logs_date ON reading_logs(date)`,
	`CREATE INDEX IF NOT EXISTS idx_bible_logs_date ON bible_logs(date)`,
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.createSchema()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'newlife init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema statements are idempotent; running them on load also upgrades
	// databases created before a table existed.
	return s.createSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, password, name, age, affiliation,
			phone_number, gender, region, joined_at, last_login_ip
		FROM profile WHERE slot = 1`)

	var p models.UserProfile
	var joinedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.Password, &p.Name, &p.Age, &p.Affiliation,
		&p.PhoneNumber, &p.Gender, &p.Region, &joinedAt, &p.LastLoginIP)
	if err == sql.ErrNoRows {
		return models.UserProfile{}, ErrNoProfile
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	p.JoinedAt, err = time.Parse(time.RFC3339, joinedAt)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to parse joined_at: %w", err)
	}

	return p, nil
}

func (s *SQLiteStore) SaveProfile(p models.UserProfile) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO profile (
			slot, id, user_id, password, name, age, affiliation,
			phone_number, gender, region, joined_at, last_login_ip
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Password, p.Name, p.Age, p.Affiliation,
		p.PhoneNumber, string(p.Gender), string(p.Region),
		p.JoinedAt.UTC().Format(time.RFC3339), p.LastLoginIP)
	return err
}

func (s *SQLiteStore) GetDailyData(date string) (models.DailyData, error) {
	day := models.NewDailyData(date)

	row := s.db.QueryRow(`SELECT `+checklistColumns+` FROM daily_checklists WHERE date = ?`, date)
	checklist, found, err := scanChecklist(row)
	if err != nil {
		return models.DailyData{}, err
	}
	if found {
		day.Checklist = checklist
	}

	day.ReadingLogs, err = s.readingLogsForDate(date)
	if err != nil {
		return models.DailyData{}, err
	}
	day.BibleLogs, err = s.bibleLogsForDate(date)
	if err != nil {
		return models.DailyData{}, err
	}

	return day, nil
}

func scanChecklist(row *sql.Row) (models.Checklist, bool, error) {
	var c models.Checklist
	err := row.Scan(
		&c.DawnPrayer, &c.MorningPrayer, &c.NoonPrayer, &c.AfternoonPrayer,
		&c.NightPrayer, &c.Worship, &c.Exercise, &c.Recitation,
		&c.Cleaning, &c.Organization, &c.Recycling, &c.Hygiene,
		&c.DoorLightCheck, &c.EnvironmentCheck, &c.SlowChewing, &c.BedsidePrep,
	)
	if err == sql.ErrNoRows {
		return models.Checklist{}, false, nil
	}
	if err != nil {
		return models.Checklist{}, false, err
	}
	return c, true, nil
}

func (s *SQLiteStore) readingLogsForDate(date string) ([]models.ReadingLog, error) {
	rows, err := s.db.Query(`
		SELECT id, book_title, pages, highlight, created_at
		FROM reading_logs WHERE date = ? ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.ReadingLog{}
	for rows.Next() {
		var l models.ReadingLog
		if err := rows.Scan(&l.ID, &l.BookTitle, &l.Pages, &l.Highlight, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) bibleLogsForDate(date string) ([]models.BibleLog, error) {
	rows, err := s.db.Query(`
		SELECT id, book, chapter, chapter_count, created_at
		FROM bible_logs WHERE date = ? ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.BibleLog{}
	for rows.Next() {
		var l models.BibleLog
		if err := rows.Scan(&l.ID, &l.Book, &l.Chapter, &l.ChapterCount, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) SaveDailyData(day models.DailyData) error {
	if day.Date == "" {
		return fmt.Errorf("daily data has no date")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	c := day.Checklist
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO daily_checklists (date, `+checklistColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		day.Date,
		c.DawnPrayer, c.MorningPrayer, c.NoonPrayer, c.AfternoonPrayer,
		c.NightPrayer, c.Worship, c.Exercise, c.Recitation,
		c.Cleaning, c.Organization, c.Recycling, c.Hygiene,
		c.DoorLightCheck, c.EnvironmentCheck, c.SlowChewing, c.BedsidePrep)
	if err != nil {
		return err
	}

	// Existing logs for the date are replaced wholesale so the stored
	// sequence always matches the caller's record.
	if _, err := tx.Exec(`DELETE FROM reading_logs WHERE date = ?`, day.Date); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM bible_logs WHERE date = ?`, day.Date); err != nil {
		return err
	}

	for i, l := range day.ReadingLogs {
		_, err := tx.Exec(`
			INSERT INTO reading_logs (id, date, position, book_title, pages, highlight, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.ID, day.Date, i, l.BookTitle, l.Pages, l.Highlight, l.CreatedAt)
		if err != nil {
			return err
		}
	}
	for i, l := range day.BibleLogs {
		_, err := tx.Exec(`
			INSERT INTO bible_logs (id, date, position, book, chapter, chapter_count, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.ID, day.Date, i, l.Book, l.Chapter, l.ChapterCount, l.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetAllDailyData() (map[string]models.DailyData, error) {
	all := make(map[string]models.DailyData)

	rows, err := s.db.Query(`SELECT date, ` + checklistColumns + ` FROM daily_checklists`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var date string
		var c models.Checklist
		err := rows.Scan(&date,
			&c.DawnPrayer, &c.MorningPrayer, &c.NoonPrayer, &c.AfternoonPrayer,
			&c.NightPrayer, &c.Worship, &c.Exercise, &c.Recitation,
			&c.Cleaning, &c.Organization, &c.Recycling, &c.Hygiene,
			&c.DoorLightCheck, &c.EnvironmentCheck, &c.SlowChewing, &c.BedsidePrep)
		if err != nil {
			rows.Close()
			return nil, err
		}
		day := models.NewDailyData(date)
		day.Checklist = c
		all[date] = day
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := s.collectReadingLogs(all); err != nil {
		return nil, err
	}
	if err := s.collectBibleLogs(all); err != nil {
		return nil, err
	}

	return all, nil
}

func (s *SQLiteStore) collectReadingLogs(all map[string]models.DailyData) error {
	rows, err := s.db.Query(`
		SELECT date, id, book_title, pages, highlight, created_at
		FROM reading_logs ORDER BY date, position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var date string
		var l models.ReadingLog
		if err := rows.Scan(&date, &l.ID, &l.BookTitle, &l.Pages, &l.Highlight, &l.CreatedAt); err != nil {
			return err
		}
		day, ok := all[date]
		if !ok {
			day = models.NewDailyData(date)
		}
		day.ReadingLogs = append(day.ReadingLogs, l)
		all[date] = day
	}
	return rows.Err()
}

func (s *SQLiteStore) collectBibleLogs(all map[string]models.DailyData) error {
	rows, err := s.db.Query(`
		SELECT date, id, book, chapter, chapter_count, created_at
		FROM bible_logs ORDER BY date, position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var date string
		var l models.BibleLog
		if err := rows.Scan(&date, &l.ID, &l.Book, &l.Chapter, &l.ChapterCount, &l.CreatedAt); err != nil {
			return err
		}
		day, ok := all[date]
		if !ok {
			day = models.NewDailyData(date)
		}
		day.BibleLogs = append(day.BibleLogs, l)
		all[date] = day
	}
	return rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
