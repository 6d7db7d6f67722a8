package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/travelog/pkg/core"
	"github.com/rubiojr/travelog/pkg/log"
	"github.com/rubiojr/travelog/pkg/search"
	"github.com/rubiojr/travelog/pkg/session"
	"github.com/rubiojr/travelog/pkg/storage"
)

// PaletteCommand creates the palette command
func PaletteCommand() *cli.Command {
	return &cli.Command{
		Name:  "palette",
		Usage: "Interactive search palette (type to search, :N selects result N, :q quits)",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runPalette(c.String("config"))
		},
	}
}

// liveStore is the mutable store view handed to the search service.
// The journal watcher swaps the underlying snapshot when the database
// changes on disk, so every search sees live data.
type liveStore struct {
	mu    sync.RWMutex
	store *core.Store
}

func (s *liveStore) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Years()
}

func (s *liveStore) Entries(year, month int) []core.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Entries(year, month)
}

func (s *liveStore) replace(store *core.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
}

// paletteSink prints the session's side effects to the terminal.
type paletteSink struct {
	renderer *renderer
	store    *liveStore
}

func (s *paletteSink) RenderResults(results []search.Result) {
	fmt.Print(s.renderer.results(results, -1))
	fmt.Print("> ")
}

func (s *paletteSink) Navigate(action session.Action) {
	switch action.Kind {
	case search.KindYear:
		fmt.Printf("Jumping to %d\n", action.Year)
	case search.KindMonth:
		fmt.Printf("Jumping to %s\n", core.MonthName(action.Month))
	case search.KindEntry:
		fmt.Printf("Jumping to %s %d\n", core.MonthName(action.Month), action.Year)
		s.store.mu.RLock()
		entry, _, _, found := s.store.store.Find(action.EntryID)
		s.store.mu.RUnlock()
		if found {
			fmt.Print(s.renderer.entryCard(entry))
		}
	}
}

func (s *paletteSink) ClearHighlight() {}

func runPalette(configPath string) error {
	cfg, journal, err := openJournal(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := journal.Close(); err != nil {
			fmt.Printf("Warning: failed to close journal: %v\n", err)
		}
	}()

	logger := log.ForComponent("palette")

	store, err := journal.Load()
	if err != nil {
		return fmt.Errorf("loading journal: %w", err)
	}
	live := &liveStore{store: store}

	watcher, err := storage.Watch(journal.Path(), func() {
		reloaded, err := journal.Load()
		if err != nil {
			logger.Warnf("reloading journal: %v", err)
			return
		}
		live.replace(reloaded)
	})
	if err != nil {
		logger.Warnf("journal watching disabled: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warnf("closing watcher: %v", err)
			}
		}()
	}

	history := session.NewHistory(cfg.HistoryLimit)
	if saved, err := journal.LoadHistory(); err == nil {
		history.Replace(saved)
	} else {
		logger.Warnf("loading search history: %v", err)
	}

	service := search.NewServiceWithLimit(live, cfg.ResultsLimit)
	sink := &paletteSink{renderer: newRenderer(cfg.Theme), store: live}
	ctrl := session.NewController(service, sink, history, cfg.SearchDebounce.Duration)
	ctrl.Open()

	fmt.Println("Search your travels. Type a query, :N to open result N, :q to quit.")
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == ":q":
			ctrl.Close()
			if err := journal.SaveHistory(history.Queries()); err != nil {
				logger.Warnf("saving search history: %v", err)
			}
			return nil
		case strings.HasPrefix(line, ":"):
			n, err := strconv.Atoi(line[1:])
			if err != nil {
				fmt.Println("Unknown command", line)
				fmt.Print("> ")
				continue
			}
			selectResult(ctrl, n)
			ctrl.Open()
			fmt.Print("> ")
		case line == "":
			fmt.Print("> ")
		default:
			ctrl.Input(line)
		}
	}

	ctrl.Close()
	if err := journal.SaveHistory(history.Queries()); err != nil {
		logger.Warnf("saving search history: %v", err)
	}
	return scanner.Err()
}

// selectResult moves the clamped selection from -1 to index n and
// dispatches it.
func selectResult(ctrl *session.Controller, n int) {
	for ctrl.Selected() < n {
		before := ctrl.Selected()
		ctrl.MoveDown()
		if ctrl.Selected() == before {
			break
		}
	}
	if !ctrl.Select() {
		fmt.Println("No such result")
	}
}
