package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/minsukang/newlife/internal/backup"
	"github.com/minsukang/newlife/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: Corrupt payload sidecars
	if sidecars, err := corruptSidecars(ctx.Store.GetConfigPath()); err != nil {
		fmt.Printf("⚠ Corrupt payload check: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(sidecars) > 0 {
		fmt.Printf("⚠ Corrupt payload check: WARNING\n")
		fmt.Printf("   %d preserved corrupt payload(s) next to the storage file; inspect and delete:\n", len(sidecars))
		for _, s := range sidecars {
			fmt.Printf("     %s\n", s)
		}
	} else {
		fmt.Printf("✓ Corrupt payload check: OK\n")
	}

	// Check 3: Backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.List(); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups yet; run 'newlife backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 4: Concurrent process detection. Writes are last-write-wins, so a
	// second running instance can silently discard changes made here.
	if count, err := runningInstances(); err != nil {
		fmt.Printf("⊘ Concurrent process check: SKIPPED (%v)\n", err)
	} else if count > 1 {
		fmt.Printf("⚠ Concurrent process check: WARNING\n")
		fmt.Printf("   %d newlife processes are running; concurrent writes are not coordinated\n", count)
	} else {
		fmt.Printf("✓ Concurrent process check: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// corruptSidecars lists the preserved corrupt payload files next to the
// storage file.
func corruptSidecars(storagePath string) ([]string, error) {
	dir := filepath.Dir(storagePath)
	base := filepath.Base(storagePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sidecars []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), base+".corrupt-") {
			sidecars = append(sidecars, filepath.Join(dir, entry.Name()))
		}
	}
	return sidecars, nil
}

func runningInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range procs {
		name := p.Executable()
		if name == constants.AppName || name == constants.AppName+".exe" {
			count++
		}
	}
	return count, nil
}
