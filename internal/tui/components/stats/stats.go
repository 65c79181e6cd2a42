package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/minsukang/newlife/internal/models"
	appstats "github.com/minsukang/newlife/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type Model struct {
	all     map[string]models.DailyData
	r       appstats.Range
	summary appstats.Summary
}

func New(all map[string]models.DailyData) Model {
	m := Model{all: all, r: appstats.RangeWeek}
	m.recompute()
	return m
}

// SetAll replaces the underlying records and recomputes the summary.
func (m *Model) SetAll(all map[string]models.DailyData) {
	m.all = all
	m.recompute()
}

// SetRange switches the trailing window and recomputes the summary.
func (m *Model) SetRange(r appstats.Range) {
	m.r = r
	m.recompute()
}

func (m *Model) Range() appstats.Range {
	return m.r
}

func (m *Model) recompute() {
	m.summary = appstats.Compute(m.all, m.r, time.Now())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("성장 통계 (%s)", m.r)))
	b.WriteString("\n\n")

	if len(m.summary.Series) == 0 {
		b.WriteString(dimStyle.Render("데이터가 충분하지 않습니다."))
		b.WriteString("\n")
	} else {
		for _, row := range m.summary.Series {
			bar := barStyle.Render(strings.Repeat("█", row.CompletedTasks))
			b.WriteString(fmt.Sprintf("%s  %-16s %2d done · %d장 · %d쪽\n",
				row.Label, bar, row.CompletedTasks, row.BibleChapters, row.ReadingPages))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("전체 누적: 독서 %d쪽 · 성경 %d장",
		m.summary.Totals.ReadingPages, m.summary.Totals.BibleChapters)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("[w] week  [m] month  [y] year"))

	return b.String()
}
