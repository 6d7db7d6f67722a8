package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/search"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run a one-shot ranked search over the journal",
		ArgsUsage: "QUERY",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "scores",
				Usage: "Show relevance scores next to results",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			return searchJournal(c.String("config"), query, c.Bool("scores"))
		},
	}
}

func searchJournal(configPath, query string, showScores bool) error {
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

	service := search.NewServiceWithLimit(store, cfg.ResultsLimit)
	results := service.Search(query)

	r := newRenderer(cfg.Theme)
	fmt.Print(r.results(results, -1))
	if showScores && len(results) > 0 {
		for i, result := range results {
			fmt.Printf("%2d. score=%d kind=%s\n", i, result.Score, result.Kind)
		}
	}
	return nil
}
