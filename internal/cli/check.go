package cli

import (
	"fmt"

	"github.com/minsukang/newlife/internal/constants"
)

type CheckCmd struct {
	List   CheckListCmd   `cmd:"" help:"Show the checklist for a day." default:"1"`
	Toggle CheckToggleCmd `cmd:"" help:"Toggle a checklist item for a day."`
}

type CheckListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CheckListCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	fmt.Printf("Checklist for %s:\n\n", date)
	for _, item := range constants.ChecklistItems {
		done, err := day.Checklist.Get(item.ID)
		if err != nil {
			return err
		}
		mark := "[ ]"
		if done {
			mark = "[x]"
		}
		fmt.Printf("%s %-18s %s\n", mark, item.ID, item.Label)
	}
	fmt.Printf("\nCompleted: %d/%d\n", day.Checklist.Completed(), len(constants.ChecklistItems))
	return nil
}

type CheckToggleCmd struct {
	Item string `arg:"" help:"Checklist item id (e.g. worship, dawnPrayer)."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CheckToggleCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDailyData(date)
	if err != nil {
		return err
	}

	value, err := day.Checklist.Toggle(c.Item)
	if err != nil {
		return err
	}

	if err := ctx.Store.SaveDailyData(day); err != nil {
		return err
	}

	state := "done"
	if !value {
		state = "not done"
	}
	fmt.Printf("Marked %s (%s) as %s for %s\n", c.Item, constants.ChecklistLabel(c.Item), state, date)
	return nil
}
