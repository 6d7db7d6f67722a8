package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rubiojr/travelog/pkg/core"
	"github.com/rubiojr/travelog/pkg/search"
)

// theme maps a configured theme name to the colors used below.
type theme struct {
	title    lipgloss.Color
	accent   lipgloss.Color
	muted    lipgloss.Color
	border   lipgloss.Color
	selected lipgloss.Color
}

var themes = map[string]theme{
	"light":     {title: "25", accent: "33", muted: "245", border: "250", selected: "39"},
	"dark":      {title: "86", accent: "214", muted: "240", border: "238", selected: "45"},
	"brutalist": {title: "226", accent: "201", muted: "250", border: "255", selected: "226"},
	"mono":      {title: "255", accent: "250", muted: "240", border: "240", selected: "255"},
}

// iconGlyphs maps the search result icon tags to terminal glyphs.
var iconGlyphs = map[string]string{
	"map-pin":  "📍",
	"calendar": "📅",
	"clock":    "🕐",
}

var titleCaser = cases.Title(language.English)

// renderer turns search results and journal content into styled
// terminal output. It is the presentation collaborator; pkg/search and
// pkg/session stay free of any rendering concern.
type renderer struct {
	titleStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	subtitleStyle lipgloss.Style
	cardStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	mutedStyle    lipgloss.Style
}

func newRenderer(themeName string) *renderer {
	t, ok := themes[themeName]
	if !ok {
		t = themes["mono"]
	}
	return &renderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.title).
			Padding(0, 1),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.accent).
			Margin(1, 0, 0, 0),
		subtitleStyle: lipgloss.NewStyle().
			Foreground(t.muted),
		cardStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.border).
			Padding(0, 1).
			Margin(0, 0, 1, 2),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.selected),
		mutedStyle: lipgloss.NewStyle().
			Foreground(t.muted).
			Italic(true),
	}
}

// results renders a ranked result list grouped by category, the way the
// palette displays them: years, then months, then travel entries.
func (r *renderer) results(results []search.Result, selected int) string {
	if len(results) == 0 {
		return r.mutedStyle.Render("No results found") + "\n" +
			r.subtitleStyle.Render("Try searching for locations, years, or months") + "\n"
	}

	var b strings.Builder
	for _, kind := range []search.Kind{search.KindYear, search.KindMonth, search.KindEntry} {
		header := false
		for i, result := range results {
			if result.Kind != kind {
				continue
			}
			if !header {
				b.WriteString(r.headerStyle.Render(categoryHeader(kind)))
				b.WriteString("\n")
				header = true
			}
			line := fmt.Sprintf("%2d. %s %s", i, iconGlyphs[result.Icon], result.Title())
			if i == selected {
				line = r.selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
			b.WriteString("       " + r.subtitleStyle.Render(result.Subtitle()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func categoryHeader(kind search.Kind) string {
	switch kind {
	case search.KindYear:
		return "Years"
	case search.KindMonth:
		return "Months"
	default:
		return "Travel Entries"
	}
}

// yearGrid renders the twelve month cards for a year.
func (r *renderer) yearGrid(store *core.Store, year int) string {
	var b strings.Builder
	b.WriteString(r.titleStyle.Render(fmt.Sprintf("Travels in %d", year)))
	b.WriteString("\n")

	for month := 0; month < 12; month++ {
		entries := store.Entries(year, month)
		b.WriteString(r.headerStyle.Render(core.MonthName(month)))
		b.WriteString("\n")
		if len(entries) == 0 {
			b.WriteString(r.mutedStyle.Render("  No travels yet"))
			b.WriteString("\n")
			continue
		}
		for _, entry := range entries {
			b.WriteString(r.entryCard(entry))
		}
	}
	return b.String()
}

// entryCard renders one travel entry.
func (r *renderer) entryCard(entry core.Entry) string {
	location := titleCaser.String(entry.Location)
	content := iconGlyphs["map-pin"] + " " + r.selectedStyle.Render(location)
	if entry.Details != "" {
		content += "\n" + r.subtitleStyle.Render(entry.Details)
	}
	return r.cardStyle.Render(content) + "\n"
}
