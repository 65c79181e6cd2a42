package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/minsukang/newlife/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateChecklist:
		content = docStyle.Render(m.checklistModel.View())
	case constants.StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case constants.StateStats:
		content = docStyle.Render(m.statsModel.View())
	case constants.StateAddReading, constants.StateAddBible:
		return docStyle.Render(m.form.View())
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, m.viewTabs(), "  ", dateStyle.Render(m.date))

	sections := []string{header, content}
	if m.errMsg != "" {
		sections = append(sections, dangerStyle.Render(m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"일과", "일지", "통계"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
