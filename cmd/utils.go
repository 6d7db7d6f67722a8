package cmd

import (
	"fmt"
	"strconv"

	"github.com/rubiojr/travelog/pkg/config"
	"github.com/rubiojr/travelog/pkg/search"
	"github.com/rubiojr/travelog/pkg/storage"
)

// openJournal loads the config and opens the journal database it points
// at. Callers own closing the returned journal.
func openJournal(configPath string) (*config.Config, *storage.Journal, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	journal, err := storage.Open(cfg.JournalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal: %w", err)
	}

	return cfg, journal, nil
}

// parseMonthArg accepts a month as a 1-12 number or an English name or
// abbreviation ("september", "sept", "sep") and returns the 0-11 index.
func parseMonthArg(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range (1-12)", n)
		}
		return n - 1, nil
	}
	if month, ok := search.ParseMonth(arg); ok {
		return month, nil
	}
	return 0, fmt.Errorf("unrecognized month %q", arg)
}
