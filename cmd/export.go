package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/storage"
)

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the journal as JSON (use a .zst suffix for compression)",
		ArgsUsage: "[FILE]",
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				path = fmt.Sprintf("travel-log-%s.json", time.Now().Format("2006-01-02"))
			}
			return exportJournal(c.String("config"), path)
		},
	}
}

func exportJournal(configPath, path string) error {
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

	if err := storage.Export(store, path); err != nil {
		return err
	}
	fmt.Printf("Exported %d entries to %s\n", store.Len(), path)
	return nil
}
