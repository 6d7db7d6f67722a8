package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
)

// EditCommand creates the edit command
func EditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a travel entry (find IDs with list --ids)",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "month",
				Usage: "Move the entry to a different month (name, abbreviation or 1-12)",
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "New location",
			},
			&cli.StringFlag{
				Name:  "details",
				Usage: "New free-form trip notes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("edit requires an entry ID")
			}
			return editEntry(c.String("config"), id, c.String("month"), c.String("location"), c.String("details"), c.IsSet("details"))
		},
	}
}

// editEntry rewrites an entry in place. Omitted flags keep the current
// values; --details is distinguished from an explicit empty string so
// notes can be cleared.
func editEntry(configPath, id, monthArg, location, details string, detailsSet bool) error {
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
	entry, year, month, found := store.Find(id)
	if !found {
		return fmt.Errorf("no entry with ID %s", id)
	}

	if monthArg != "" {
		month, err = parseMonthArg(monthArg)
		if err != nil {
			return err
		}
	}
	if location == "" {
		location = entry.Location
	}
	if !detailsSet {
		details = entry.Details
	}

	if err := journal.UpdateEntry(id, month, location, details); err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	fmt.Printf("Updated %s (%s %d)\n", location, core.MonthName(month), year)
	return nil
}
