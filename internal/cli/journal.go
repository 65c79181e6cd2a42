package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/models"
)

type JournalCmd struct {
	Reading struct {
		Add    ReadingAddCmd    `cmd:"" help:"Add a reading log entry."`
		List   ReadingListCmd   `cmd:"" help:"List reading log entries for a day." default:"1"`
		Remove ReadingRemoveCmd `cmd:"" help:"Remove a reading log entry by id."`
	} `cmd:"" help:"Manage general reading logs."`
	Bible struct {
		Add    BibleAddCmd    `cmd:"" help:"Add a Bible reading log entry."`
		List   BibleListCmd   `cmd:"" help:"List Bible log entries for a day." default:"1"`
		Remove BibleRemoveCmd `cmd:"" help:"Remove a Bible log entry by id."`
	} `cmd:"" help:"Manage Bible reading logs."`
}

type ReadingAddCmd struct {
	Title     string `arg:"" help:"Book title."`
	Pages     int    `help:"Pages read." default:"0"`
	Highlight string `help:"A memorable passage or note." default:""`
	Date      string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ReadingAddCmd) Run(ctx *Context) error {
	if c.Pages < 0 {
		return fmt.Errorf("pages must not be negative")
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	log := models.ReadingLog{
		ID:        uuid.New().String(),
		BookTitle: c.Title,
		Pages:     c.Pages,
		Highlight: c.Highlight,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// Newest entries go first
	day.ReadingLogs = append([]models.ReadingLog{log}, day.ReadingLogs...)

	if err := ctx.Store.SaveDailyData(day); err != nil {
		return err
	}

	fmt.Printf("Added reading log for %s: %s (%d pages)\n", date, c.Title, c.Pages)
	return nil
}

type ReadingListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ReadingListCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	if len(day.ReadingLogs) == 0 {
		fmt.Printf("No reading logs for %s.\n", date)
		return nil
	}

	fmt.Printf("Reading logs for %s:\n\n", date)
	for _, log := range day.ReadingLogs {
		fmt.Printf("%s  %s (%d pages)\n", log.ID, log.BookTitle, log.Pages)
		if log.Highlight != "" {
			fmt.Printf("    %q\n", log.Highlight)
		}
	}
	return nil
}

type ReadingRemoveCmd struct {
	ID   string `arg:"" help:"Id of the entry to remove."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ReadingRemoveCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	kept := make([]models.ReadingLog, 0, len(day.ReadingLogs))
	found := false
	for _, log := range day.ReadingLogs {
		if log.ID == c.ID {
			found = true
			continue
		}
		kept = append(kept, log)
	}
	if !found {
		return fmt.Errorf("reading log not found for %s: %s", date, c.ID)
	}
	day.ReadingLogs = kept

	if err := ctx.Store.SaveDailyData(day); err != nil {
		return err
	}

	fmt.Printf("Removed reading log %s from %s\n", c.ID, date)
	return nil
}

type BibleAddCmd struct {
	Book    string `arg:"" help:"Bible book title (one of the 66 canonical books)."`
	Chapter int    `help:"Starting chapter." default:"1"`
	Count   int    `help:"Number of chapters read." default:"1"`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *BibleAddCmd) Run(ctx *Context) error {
	if !constants.IsBibleBook(c.Book) {
		return fmt.Errorf("unknown Bible book: %s", c.Book)
	}
	if c.Chapter < 1 {
		return fmt.Errorf("chapter must be positive")
	}
	if c.Count < 0 {
		return fmt.Errorf("chapter count must not be negative")
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	log := models.BibleLog{
		ID:           uuid.New().String(),
		Book:         c.Book,
		Chapter:      c.Chapter,
		ChapterCount: c.Count,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	day.BibleLogs = append([]models.BibleLog{log}, day.BibleLogs...)

	if err := ctx.Store.SaveDailyData(day); err != nil {
		return err
	}

	fmt.Printf("Added Bible log for %s: %s %d (%d chapters)\n", date, c.Book, c.Chapter, c.Count)
	return nil
}

type BibleListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *BibleListCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	if len(day.BibleLogs) == 0 {
		fmt.Printf("No Bible logs for %s.\n", date)
		return nil
	}

	fmt.Printf("Bible logs for %s:\n\n", date)
	for _, log := range day.BibleLogs {
		fmt.Printf("%s  %s %d (%d chapters)\n", log.ID, log.Book, log.Chapter, log.ChapterCount)
	}
	return nil
}

type BibleRemoveCmd struct {
	ID   string `arg:"" help:"Id of the entry to remove."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *BibleRemoveCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	kept := make([]models.BibleLog, 0, len(day.BibleLogs))
	found := false
	for _, log := range day.BibleLogs {
		if log.ID == c.ID {
			found = true
			continue
		}
		kept = append(kept, log)
	}
	if !found {
		return fmt.Errorf("bible log not found for %s: %s", date, c.ID)
	}
	day.BibleLogs = kept

	if err := ctx.Store.SaveDailyData(day); err != nil {
		return err
	}

	fmt.Printf("Removed Bible log %s from %s\n", c.ID, date)
	return nil
}
