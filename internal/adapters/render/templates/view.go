package templates

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// TTL is the full lifetime of a record; the bar shows how much of it is left.
	TTL time.Duration
}

func renderView(summary exchangeSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Template Exchange"),
		s.header.Render(headerLine(summary)),
	}

	if len(summary.ordered) == 0 {
		lines = append(lines, s.empty.Render("No templates waiting to be imported."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if summary.next != nil && !opts.Now.IsZero() {
		lines = append(lines, s.header.Render(fmt.Sprintf("next to expire: %s in %s",
			summary.next.Key, formatRemaining(summary.next.ExpiresAt.Sub(opts.Now)))))
	}

	for _, record := range summary.ordered {
		lines = append(lines, s.section.Render(renderRecord(record, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(summary exchangeSummary) string {
	line := fmt.Sprintf("live records: %d", len(summary.ordered)-summary.expired)
	if summary.expired > 0 {
		line += fmt.Sprintf(", awaiting sweep: %d", summary.expired)
	}
	return line
}

func renderRecord(record domain.TemplateRecord, opts RenderOptions, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.key.Render(recordTitle(record)),
		s.detail.Render(rulesLine(record.Template)),
		expiryLine(record.ExpiresAt, opts, s),
	)
}

func recordTitle(record domain.TemplateRecord) string {
	name := strings.TrimSpace(record.Template.Name)
	if name == "" {
		return string(record.Key)
	}
	return fmt.Sprintf("%s (%s)", name, record.Key)
}

func rulesLine(template domain.Template) string {
	enabled := 0
	for _, v := range template.RulesEnabled {
		if on, ok := v.(bool); ok && on {
			enabled++
		}
	}
	return fmt.Sprintf("rules: %d, enabled: %d", len(template.Rules), enabled)
}

func expiryLine(expiresAt time.Time, opts RenderOptions, s styles) string {
	label := s.label.Render("ttl:")
	if opts.Now.IsZero() {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.detail.Render("expires "+expiresAt.Format(time.RFC3339)))
	}

	remaining := expiresAt.Sub(opts.Now)
	if remaining <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.warning.Render("[expired]"))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderProgressBar(remainingPercent(remaining, opts.TTL), 24, s),
		" ",
		s.detail.Render(fmt.Sprintf("expires in %s (%s)", formatRemaining(remaining), expiresAt.Format("15:04:05"))),
	)
}

func remainingPercent(remaining, ttl time.Duration) float64 {
	if ttl <= 0 {
		return 100
	}
	return clampPercent(100 * remaining.Seconds() / ttl.Seconds())
}

func renderProgressBar(leftPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(leftPercent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatRemaining(d time.Duration) string {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}
