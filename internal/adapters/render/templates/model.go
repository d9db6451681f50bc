package templates

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/bnema/twmj/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// exchangeSummary is the exchange directory as the listing shows it: records
// by soonest expiry, with the ones already past their TTL counted apart.
type exchangeSummary struct {
	ordered []domain.TemplateRecord
	expired int
	// next is the first record still importable, nil when none is.
	next *domain.TemplateRecord
}

type summarizedMsg struct {
	summary exchangeSummary
}

type model struct {
	records  []domain.TemplateRecord
	opts     RenderOptions
	styles   styles
	summary  exchangeSummary
	rendered bool
}

func newModel(records []domain.TemplateRecord, opts RenderOptions) model {
	return model{
		records: records,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	records, opts := m.records, m.opts
	return func() tea.Msg {
		return summarizedMsg{summary: summarize(records, opts)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(summarizedMsg); ok {
		m.summary = msg.summary
		m.rendered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if !m.rendered {
		return ""
	}
	return renderView(m.summary, m.opts, m.styles)
}

func summarize(records []domain.TemplateRecord, opts RenderOptions) exchangeSummary {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b domain.TemplateRecord) int {
		if c := a.ExpiresAt.Compare(b.ExpiresAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.Key), string(b.Key))
	})

	summary := exchangeSummary{ordered: ordered}
	for i := range ordered {
		if !opts.Now.IsZero() && ordered[i].Expired(opts.Now) {
			summary.expired++
			continue
		}
		if summary.next == nil {
			summary.next = &ordered[i]
		}
	}
	return summary
}

// Render lays out the live exchange records, soonest expiry first.
func Render(records []domain.TemplateRecord, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(records, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
