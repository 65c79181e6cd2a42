// Package stats derives chart-ready summaries from the stored daily records.
// Compute is a pure function: it never touches storage and the same inputs
// always produce the same output, so views recompute it on demand rather
// than maintaining it incrementally.
package stats

import (
	"sort"
	"time"

	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/models"
)

// Range selects the trailing window for the summary series.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// DaySummary is one chart row for a day inside the selected range.
type DaySummary struct {
	// Date is the full YYYY-MM-DD key the row was built from.
	Date string
	// Label is the trailing MM-DD portion used for axis labels.
	Label string
	// CompletedTasks is the number of checklist flags set that day.
	CompletedTasks int
	// BibleChapters is the summed chapter count of that day's Bible logs.
	BibleChapters int
	// ReadingPages is the summed page count of that day's reading logs.
	ReadingPages int
}

// Totals are lifetime sums over every stored day, independent of the range.
type Totals struct {
	ReadingPages  int
	BibleChapters int
}

// Summary is the full aggregation result.
type Summary struct {
	Series []DaySummary
	Totals Totals
}

// cutoff returns the earliest date (inclusive) kept in the series. Month and
// year subtraction follow Go's AddDate normalization, so e.g. Mar 31 minus
// one month lands on Mar 3 via the Feb 31 rollover.
func cutoff(now time.Time, r Range) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch r {
	case RangeMonth:
		return day.AddDate(0, -1, 0)
	case RangeYear:
		return day.AddDate(-1, 0, 0)
	default:
		return day.AddDate(0, 0, -7)
	}
}

// Compute builds the range-filtered series and the lifetime totals for the
// given records. Date keys that do not parse as YYYY-MM-DD are excluded from
// the series but still contribute to the totals.
func Compute(all map[string]models.DailyData, r Range, now time.Time) Summary {
	dates := make([]string, 0, len(all))
	for date := range all {
		dates = append(dates, date)
	}
	// Lexical order on YYYY-MM-DD keys is chronological order.
	sort.Strings(dates)

	earliest := cutoff(now, r)

	summary := Summary{Series: []DaySummary{}}
	for _, date := range dates {
		day := all[date]

		pages := 0
		for _, l := range day.ReadingLogs {
			pages += l.Pages
		}
		chapters := 0
		for _, l := range day.BibleLogs {
			chapters += l.ChapterCount
		}

		summary.Totals.ReadingPages += pages
		summary.Totals.BibleChapters += chapters

		parsed, err := time.Parse(constants.DateFormat, date)
		if err != nil {
			continue
		}
		if parsed.Before(earliest) {
			continue
		}

		label := date
		if len(date) > 5 {
			label = date[len(date)-5:]
		}

		summary.Series = append(summary.Series, DaySummary{
			Date:           date,
			Label:          label,
			CompletedTasks: day.Checklist.Completed(),
			BibleChapters:  chapters,
			ReadingPages:   pages,
		})
	}

	return summary
}
