package journal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minsukang/newlife/internal/models"
)

// RemoveReadingMsg asks the parent model to remove a reading log by id.
type RemoveReadingMsg struct {
	ID string
}

// RemoveBibleMsg asks the parent model to remove a Bible log by id.
type RemoveBibleMsg struct {
	ID string
}

// AddReadingMsg asks the parent model to open the reading-log form.
type AddReadingMsg struct{}

// AddBibleMsg asks the parent model to open the Bible-log form.
type AddBibleMsg struct{}

type entryKind int

const (
	kindReading entryKind = iota
	kindBible
)

type Item struct {
	kind     entryKind
	id       string
	title    string
	subtitle string
}

func (i Item) Title() string       { return i.title }
func (i Item) Description() string { return i.subtitle }
func (i Item) FilterValue() string { return i.title }

type KeyMap struct {
	AddReading key.Binding
	AddBible   key.Binding
	Delete     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddReading: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "add reading"),
		),
		AddBible: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "add bible"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete entry"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(day models.DailyData, width, height int) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(buildItems(day), delegate, width, height)
	l.Title = "독서 일지"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func buildItems(day models.DailyData) []list.Item {
	items := []list.Item{}
	for _, log := range day.BibleLogs {
		items = append(items, Item{
			kind:     kindBible,
			id:       log.ID,
			title:    fmt.Sprintf("[성경] %s %d장", log.Book, log.Chapter),
			subtitle: fmt.Sprintf("%d chapters", log.ChapterCount),
		})
	}
	for _, log := range day.ReadingLogs {
		subtitle := fmt.Sprintf("%d pages", log.Pages)
		if log.Highlight != "" {
			subtitle = fmt.Sprintf("%d pages · %s", log.Pages, log.Highlight)
		}
		items = append(items, Item{
			kind:     kindReading,
			id:       log.ID,
			title:    fmt.Sprintf("[독서] %s", log.BookTitle),
			subtitle: subtitle,
		})
	}
	return items
}

// SetDay refreshes the entries from the given daily record.
func (m *Model) SetDay(day models.DailyData) {
	m.list.SetItems(buildItems(day))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.AddReading):
			return m, func() tea.Msg { return AddReadingMsg{} }
		case key.Matches(keyMsg, m.keys.AddBible):
			return m, func() tea.Msg { return AddBibleMsg{} }
		case key.Matches(keyMsg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				if item.kind == kindBible {
					return m, func() tea.Msg { return RemoveBibleMsg{ID: item.id} }
				}
				return m, func() tea.Msg { return RemoveReadingMsg{ID: item.id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
