package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
)

// AddCommand creates the add command
func AddCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a travel entry to the journal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "year",
				Usage: "Year of the trip",
				Value: time.Now().Year(),
			},
			&cli.StringFlag{
				Name:     "month",
				Usage:    "Month of the trip (name, abbreviation or 1-12)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "location",
				Usage:    "Where the trip went",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "details",
				Usage: "Free-form trip notes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return addEntry(c.String("config"), c.Int("year"), c.String("month"), c.String("location"), c.String("details"))
		},
	}
}

func addEntry(configPath string, year int, monthArg, location, details string) error {
	month, err := parseMonthArg(monthArg)
	if err != nil {
		return err
	}

	_, journal, err := openJournal(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := journal.Close(); err != nil {
			fmt.Printf("Warning: failed to close journal: %v\n", err)
		}
	}()

	entry := core.NewEntry(location, details)
	if entry.Location == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if err := journal.AddEntry(year, month, entry); err != nil {
		return fmt.Errorf("adding entry: %w", err)
	}

	fmt.Printf("Added %s (%s %d)\n", entry.Location, core.MonthName(month), year)
	return nil
}
