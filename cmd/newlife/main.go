package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/minsukang/newlife/internal/cli"
	"github.com/minsukang/newlife/internal/constants"
	apperrors "github.com/minsukang/newlife/internal/errors"
	"github.com/minsukang/newlife/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db/.sqlite extension selects the SQLite backend; anything else uses the JSON document store." default:"~/.config/newlife/newlife.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize newlife storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Check   cli.CheckCmd   `cmd:"" help:"View and toggle the daily checklist."`
	Journal cli.JournalCmd `cmd:"" help:"Manage reading and Bible journals."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show growth statistics."`
	Profile cli.ProfileCmd `cmd:"" help:"Manage the local profile."`
	Video   cli.VideoCmd   `cmd:"" help:"Show devotion video links."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal devotion and habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := cli.NewStoreForPath(configPath)
	appCtx := &cli.Context{Store: store}

	// The init command handles its own lifecycle
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
