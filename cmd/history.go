package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// HistoryCommand creates the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent palette searches",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showHistory(c.String("config"))
		},
	}
}

func showHistory(configPath string) error {
	_, journal, err := openJournal(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := journal.Close(); err != nil {
			fmt.Printf("Warning: failed to close journal: %v\n", err)
		}
	}()

	queries, err := journal.LoadHistory()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(queries) == 0 {
		fmt.Println("No searches yet")
		return nil
	}
	for i, q := range queries {
		fmt.Printf("%d. %s\n", i+1, q)
	}
	return nil
}
