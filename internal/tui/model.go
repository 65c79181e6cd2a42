package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/models"
	"github.com/minsukang/newlife/internal/storage"
	"github.com/minsukang/newlife/internal/tui/components/checklist"
	"github.com/minsukang/newlife/internal/tui/components/journal"
	statsview "github.com/minsukang/newlife/internal/tui/components/stats"
)

type SessionState = constants.SessionState

// ReadingFormModel backs the huh form for a new reading log.
type ReadingFormModel struct {
	Title     string
	Pages     string
	Highlight string
}

// BibleFormModel backs the huh form for a new Bible log.
type BibleFormModel struct {
	Book    string
	Chapter string
	Count   string
}

type Model struct {
	store          storage.Provider
	state          SessionState
	keys           KeyMap
	help           help.Model
	date           string
	day            models.DailyData
	checklistModel checklist.Model
	journalModel   journal.Model
	statsModel     statsview.Model
	form           *huh.Form
	readingForm    *ReadingFormModel
	bibleForm      *BibleFormModel
	errMsg         string
	quitting       bool
	width          int
	height         int
}

func NewModel(store storage.Provider) Model {
	today := time.Now().Format(constants.DateFormat)

	day, err := store.GetDailyData(today)
	if err != nil {
		day = models.NewDailyData(today)
	}

	all, err := store.GetAllDailyData()
	if err != nil {
		all = map[string]models.DailyData{}
	}

	return Model{
		store:          store,
		state:          constants.StateChecklist,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		date:           today,
		day:            day,
		checklistModel: checklist.New(day.Checklist, 0, 0),
		journalModel:   journal.New(day, 0, 0),
		statsModel:     statsview.New(all),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reloadDay re-reads the current date's record and refreshes the components.
func (m *Model) reloadDay() {
	day, err := m.store.GetDailyData(m.date)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.day = day
	m.checklistModel.SetChecklist(day.Checklist)
	m.journalModel.SetDay(day)

	if all, err := m.store.GetAllDailyData(); err == nil {
		m.statsModel.SetAll(all)
	}
}

// shiftDay moves the selected date by the given number of days.
func (m *Model) shiftDay(days int) {
	parsed, err := time.Parse(constants.DateFormat, m.date)
	if err != nil {
		return
	}
	m.date = parsed.AddDate(0, 0, days).Format(constants.DateFormat)
	m.reloadDay()
}

// saveDay persists the in-memory daily record and refreshes components.
func (m *Model) saveDay() {
	if err := m.store.SaveDailyData(m.day); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.reloadDay()
}
