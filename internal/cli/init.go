package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minsukang/newlife/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing storage file before initialization."`
	Source string `help:"Source storage path to migrate data from (JSON or SQLite by extension)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absPath, err := filepath.Abs(path)
			if err == nil {
				path = absPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == path {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
			}
		}
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized newlife storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *Context, sourcePath string) error {
	source := NewStoreForPath(sourcePath)
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source storage: %w", err)
	}
	defer source.Close()

	profile, err := source.GetProfile()
	if err == nil {
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile to destination: %w", err)
		}
		fmt.Println("  Migrated profile")
	} else if !errors.Is(err, storage.ErrNoProfile) {
		return fmt.Errorf("failed to get profile from source: %w", err)
	}

	all, err := source.GetAllDailyData()
	if err != nil {
		return fmt.Errorf("failed to get daily records from source: %w", err)
	}
	for date, day := range all {
		if err := ctx.Store.SaveDailyData(day); err != nil {
			return fmt.Errorf("failed to save daily record %s: %w", date, err)
		}
	}
	fmt.Printf("  Migrated %d daily records\n", len(all))

	return nil
}

// NewStoreForPath picks the backend by file extension: .db/.sqlite/.sqlite3
// open SQLite, everything else is the JSON document store.
func NewStoreForPath(path string) storage.Provider {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return storage.NewSQLiteStore(path)
	default:
		return storage.NewJSONStore(path)
	}
}
