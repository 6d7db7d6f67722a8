package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
)

// ListCommand creates the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show the monthly travel grid for a year",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "year",
				Usage: "Year to display",
				Value: time.Now().Year(),
			},
			&cli.BoolFlag{
				Name:  "ids",
				Usage: "Print a plain listing with entry IDs (for edit/delete)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listYear(c.String("config"), c.Int("year"), c.Bool("ids"))
		},
	}
}

func listYear(configPath string, year int, showIDs bool) error {
	cfg, journal, err := openJournal(configPath)
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

	if showIDs {
		for month := 0; month < 12; month++ {
			for _, entry := range store.Entries(year, month) {
				fmt.Printf("%-9s  %s  %s\n", core.MonthName(month), entry.ID, entry.Location)
			}
		}
		return nil
	}

	fmt.Print(newRenderer(cfg.Theme).yearGrid(store, year))
	return nil
}
