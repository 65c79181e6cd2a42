package checklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/models"
)

// ToggleMsg asks the parent model to flip one checklist item and persist it.
type ToggleMsg struct {
	ID string
}

type Item struct {
	ID    string
	Label string
	Done  bool
}

func (i Item) Title() string {
	if i.Done {
		return "✓ " + i.Label
	}
	return "○ " + i.Label
}

func (i Item) Description() string {
	if i.Done {
		return "completed"
	}
	return "not yet"
}

func (i Item) FilterValue() string { return i.Label }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(c models.Checklist, width, height int) Model {
	items := buildItems(c)

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, width, height)
	l.Title = "오늘의 일과"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func buildItems(c models.Checklist) []list.Item {
	items := make([]list.Item, 0, len(constants.ChecklistItems))
	for _, meta := range constants.ChecklistItems {
		done, _ := c.Get(meta.ID)
		items = append(items, Item{ID: meta.ID, Label: meta.Label, Done: done})
	}
	return items
}

// SetChecklist refreshes the items from the given checklist state.
func (m *Model) SetChecklist(c models.Checklist) {
	m.list.SetItems(buildItems(c))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Toggle) {
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{ID: item.ID} }
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
