package models

import "encoding/json"

// DailyData is one day's tracked state, keyed by its YYYY-MM-DD date string.
// Log slices are newest-first by convention.
type DailyData struct {
	Date        string       `json:"date"`
	Checklist   Checklist    `json:"checklist"`
	ReadingLogs []ReadingLog `json:"readingLogs"`
	BibleLogs   []BibleLog   `json:"bibleLogs"`
}

// NewDailyData returns the default record for a date: all flags false, no
// logs. Callers decide whether it gets persisted.
func NewDailyData(date string) DailyData {
	return DailyData{
		Date:        date,
		Checklist:   Checklist{},
		ReadingLogs: []ReadingLog{},
		BibleLogs:   []BibleLog{},
	}
}

// UnmarshalJSON decodes defensively: a missing or malformed checklist falls
// back to the default, and missing or malformed log arrays become empty. A
// day's record never fails to decode because of a bad sub-field.
func (d *DailyData) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date        string          `json:"date"`
		Checklist   json.RawMessage `json:"checklist"`
		ReadingLogs json.RawMessage `json:"readingLogs"`
		BibleLogs   json.RawMessage `json:"bibleLogs"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Date = aux.Date

	d.Checklist = Checklist{}
	if len(aux.Checklist) > 0 {
		// A failed decode leaves the default checklist in place.
		_ = json.Unmarshal(aux.Checklist, &d.Checklist)
	}

	d.ReadingLogs = []ReadingLog{}
	if len(aux.ReadingLogs) > 0 {
		var logs []ReadingLog
		if err := json.Unmarshal(aux.ReadingLogs, &logs); err == nil && logs != nil {
			d.ReadingLogs = logs
		}
	}

	d.BibleLogs = []BibleLog{}
	if len(aux.BibleLogs) > 0 {
		var logs []BibleLog
		if err := json.Unmarshal(aux.BibleLogs, &logs); err == nil && logs != nil {
			d.BibleLogs = logs
		}
	}

	return nil
}

// AppData is the root persisted record: the optional profile plus the full
// date to daily-record mapping. It is read and written whole on every
// mutation.
type AppData struct {
	Profile   *UserProfile         `json:"profile,omitempty"`
	DailyData map[string]DailyData `json:"dailyData"`
}

// NewAppData returns an empty root record with the daily map initialized.
func NewAppData() AppData {
	return AppData{DailyData: make(map[string]DailyData)}
}
