package cli

import (
	"fmt"
	"time"

	"github.com/minsukang/newlife/internal/backup"
	"github.com/minsukang/newlife/internal/constants"
	"github.com/minsukang/newlife/internal/logger"
	"github.com/minsukang/newlife/internal/storage"
)

// Context carries the shared dependencies into every command. The store is
// injected so tests can substitute an in-memory path.
type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveDate validates an explicit YYYY-MM-DD date, or returns today when
// the argument is empty.
func ResolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}
