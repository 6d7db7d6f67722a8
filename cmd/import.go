package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ImportCommand creates the import command
func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Merge a JSON export into the journal",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("import requires a file argument")
			}
			return importJournal(c.String("config"), path)
		},
	}
}

func importJournal(configPath, path string) error {
	_, journal, err := openJournal(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := journal.Close(); err != nil {
			fmt.Printf("Warning: failed to close journal: %v\n", err)
		}
	}()

	imported, err := journal.Import(path)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	fmt.Printf("Imported %d entries from %s\n", imported, path)
	return nil
}
