package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/models"
	appstats "github.com/minsukang/newlife/internal/stats"
	"github.com/minsukang/newlife/internal/tui/components/checklist"
	"github.com/minsukang/newlife/internal/tui/components/journal"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.checklistModel.SetSize(msg.Width-4, msg.Height-6)
		m.journalModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case checklist.ToggleMsg:
		if _, err := m.day.Checklist.Toggle(msg.ID); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.saveDay()
		return m, nil

	case journal.RemoveReadingMsg:
		kept := make([]models.ReadingLog, 0, len(m.day.ReadingLogs))
		for _, log := range m.day.ReadingLogs {
			if log.ID != msg.ID {
				kept = append(kept, log)
			}
		}
		m.day.ReadingLogs = kept
		m.saveDay()
		return m, nil

	case journal.RemoveBibleMsg:
		kept := make([]models.BibleLog, 0, len(m.day.BibleLogs))
		for _, log := range m.day.BibleLogs {
			if log.ID != msg.ID {
				kept = append(kept, log)
			}
		}
		m.day.BibleLogs = kept
		m.saveDay()
		return m, nil

	case journal.AddReadingMsg:
		m.readingForm = &ReadingFormModel{}
		m.form = newReadingForm(m.readingForm)
		m.state = constants.StateAddReading
		return m, m.form.Init()

	case journal.AddBibleMsg:
		m.bibleForm = &BibleFormModel{Chapter: "1", Count: "1"}
		m.form = newBibleForm(m.bibleForm)
		m.state = constants.StateAddBible
		return m, m.form.Init()
	}

	if m.state == constants.StateAddReading || m.state == constants.StateAddBible {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % 3
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + 3) % 3
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.PrevDay):
			m.shiftDay(-1)
			return m, nil
		case key.Matches(keyMsg, m.keys.NextDay):
			m.shiftDay(1)
			return m, nil
		}

		if m.state == constants.StateStats {
			switch keyMsg.String() {
			case "w":
				m.statsModel.SetRange(appstats.RangeWeek)
			case "m":
				m.statsModel.SetRange(appstats.RangeMonth)
			case "y":
				m.statsModel.SetRange(appstats.RangeYear)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateChecklist:
		m.checklistModel, cmd = m.checklistModel.Update(msg)
	case constants.StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == constants.StateAddReading {
			m.applyReadingForm()
		} else {
			m.applyBibleForm()
		}
		m.form = nil
		m.state = constants.StateJournal
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = constants.StateJournal
		return m, nil
	}

	return m, cmd
}

func (m *Model) applyReadingForm() {
	if m.readingForm == nil || m.readingForm.Title == "" {
		return
	}
	pages, _ := strconv.Atoi(m.readingForm.Pages)
	if pages < 0 {
		pages = 0
	}
	log := models.ReadingLog{
		ID:        uuid.New().String(),
		BookTitle: m.readingForm.Title,
		Pages:     pages,
		Highlight: m.readingForm.Highlight,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	m.day.ReadingLogs = append([]models.ReadingLog{log}, m.day.ReadingLogs...)
	m.saveDay()
}

func (m *Model) applyBibleForm() {
	if m.bibleForm == nil || m.bibleForm.Book == "" {
		return
	}
	chapter, _ := strconv.Atoi(m.bibleForm.Chapter)
	if chapter < 1 {
		chapter = 1
	}
	count, _ := strconv.Atoi(m.bibleForm.Count)
	if count < 0 {
		count = 0
	}
	log := models.BibleLog{
		ID:           uuid.New().String(),
		Book:         m.bibleForm.Book,
		Chapter:      chapter,
		ChapterCount: count,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	m.day.BibleLogs = append([]models.BibleLog{log}, m.day.BibleLogs...)
	m.saveDay()
}

func newReadingForm(f *ReadingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("책 제목").Value(&f.Title),
			huh.NewInput().Title("읽은 쪽수").Value(&f.Pages),
			huh.NewInput().Title("기억에 남는 문장").Value(&f.Highlight),
		),
	)
}

func newBibleForm(f *BibleFormModel) *huh.Form {
	options := make([]huh.Option[string], 0, len(constants.BibleBooks))
	for _, book := range constants.BibleBooks {
		options = append(options, huh.NewOption(book, book))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("성경").Options(options...).Value(&f.Book),
			huh.NewInput().Title("시작 장").Value(&f.Chapter),
			huh.NewInput().Title("읽은 장 수").Value(&f.Count),
		),
	)
}
