package decks

import (
	"fmt"
	"strings"

	"github.com/bnema/twmj/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	deckStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// Render prints each deck on one line, tiles in reported order, followed by
// the mean confidence.
func Render(title string, decks []domain.ClassifiedDeck) string {
	lines := []string{titleStyle.Render(title)}
	if len(decks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, emptyStyle.Render("no tiles recognised"))...)
	}

	for i, deck := range decks {
		lines = append(lines, deckLine(i+1, deck))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderError(title string, message string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(title), " ", errorStyle.Render(message))
}

func deckLine(n int, deck domain.ClassifiedDeck) string {
	label := deckStyle.Render(fmt.Sprintf("deck %d:", n))
	if len(deck.Detections) == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", emptyStyle.Render("empty"))
	}

	tiles := make([]string, 0, len(deck.Detections))
	total := 0.0
	for _, d := range deck.Detections {
		tiles = append(tiles, d.Tile)
		total += d.Confidence
	}
	mean := total / float64(len(deck.Detections))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		tileStyle.Render(strings.Join(tiles, " ")),
		" ",
		metaStyle.Render(fmt.Sprintf("(%d tiles, %.0f%%)", len(deck.Detections), mean*100)),
	)
}
