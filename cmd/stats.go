package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show entry counts per year and month",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(c.String("config"))
		},
	}
}

func showStats(configPath string) error {
	_, journal, err := openJournal(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := journal.Close(); err != nil {
			fmt.Printf("Warning: failed to close journal: %v\n", err)
		}
	}()

	store, err := journal.Load()
	if err != nil {
		return fmt.Errorf("loading journal: %w", err)
	}

	if store.Len() == 0 {
		fmt.Println("The journal is empty")
		return nil
	}

	for _, year := range store.Years() {
		total := 0
		var months []string
		for month := 0; month < 12; month++ {
			count := len(store.Entries(year, month))
			if count == 0 {
				continue
			}
			total += count
			months = append(months, fmt.Sprintf("%s: %d", core.MonthName(month), count))
		}
		fmt.Printf("=== %d (%d entries) ===\n", year, total)
		for _, m := range months {
			fmt.Printf("  %s\n", m)
		}
	}
	fmt.Printf("\nTotal: %d entries across %d years\n", store.Len(), len(store.Years()))
	return nil
}
