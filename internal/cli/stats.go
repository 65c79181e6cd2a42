package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/minsukang/newlife/internal/stats"
)

type StatsCmd struct {
	Range string `help:"Trailing window: week, month, or year." enum:"week,month,year" default:"week"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	all, err := ctx.Store.GetAllDailyData()
	if err != nil {
		return err
	}

	summary := stats.Compute(all, stats.Range(c.Range), time.Now())

	if len(summary.Series) == 0 {
		fmt.Printf("No data recorded in the last %s.\n", c.Range)
	} else {
		fmt.Printf("Daily summary (last %s):\n\n", c.Range)
		fmt.Printf("%-6s %-10s %-12s %s\n", "Day", "Checklist", "Bible (ch)", "Reading (pp)")
		for _, row := range summary.Series {
			fmt.Printf("%-6s %-10s %-12d %d\n",
				row.Label, progressBar(row.CompletedTasks), row.BibleChapters, row.ReadingPages)
		}
	}

	fmt.Printf("\nLifetime totals: %d pages read, %d Bible chapters\n",
		summary.Totals.ReadingPages, summary.Totals.BibleChapters)
	return nil
}

// progressBar renders a completed-count out of sixteen as a compact bar.
func progressBar(completed int) string {
	if completed < 0 {
		completed = 0
	}
	if completed > 16 {
		completed = 16
	}
	// One block per two items keeps the bar 8 cells wide.
	filled := (completed + 1) / 2
	return strings.Repeat("█", filled) + strings.Repeat("·", 8-filled) + fmt.Sprintf(" %2d", completed)
}
