package cli

import (
	"fmt"

	"github.com/minsukang/newlife/internal/constants"
)

type VideoCmd struct{}

func (c *VideoCmd) Run(ctx *Context) error {
	fmt.Println("Devotion videos:")
	fmt.Printf("  %s\n", constants.ChannelURL)
	return nil
}
