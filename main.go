package main

import (
	"context"
	stdlog "log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/cmd"
	"github.com/rubiojr/travelog/pkg/config"
	"github.com/rubiojr/travelog/pkg/log"
)

func main() {
	app := &cli.Command{
		Name:  "travelog",
		Usage: "A personal travel journal with ranked search",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("debug") {
				log.SetGlobalDebug(true)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmd.AddCommand(),
			cmd.EditCommand(),
			cmd.DeleteCommand(),
			cmd.ListCommand(),
			cmd.SearchCommand(),
			cmd.PaletteCommand(),
			cmd.HistoryCommand(),
			cmd.StatsCommand(),
			cmd.ExportCommand(),
			cmd.ImportCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		stdlog.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
