package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
)

// DeleteCommand creates the delete command
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a travel entry (find IDs with list --ids)",
		ArgsUsage: "ID",
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("delete requires an entry ID")
			}
			return deleteEntry(c.String("config"), id)
		},
	}
}

func deleteEntry(configPath, id string) error {
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

	if err := journal.DeleteEntry(id); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	fmt.Printf("Deleted %s (%s %d)\n", entry.Location, core.MonthName(month), year)
	return nil
}
