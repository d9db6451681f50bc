package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// serverCall is one request against the twmj server as the CLI reports it.
// summary is read only after run succeeded.
type serverCall struct {
	label   string
	run     func(context.Context) error
	summary func() string
}

type callFinishedMsg struct {
	elapsed time.Duration
	err     error
}

var (
	callOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	callFailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	callTimeStyle   = lipgloss.NewStyle().Faint(true)
)

type serverCallModel struct {
	spinner  spinner.Model
	call     serverCall
	start    tea.Cmd
	started  time.Time
	finished *callFinishedMsg
	outcome  string
}

func newServerCallModel(call serverCall, start tea.Cmd, started time.Time) serverCallModel {
	return serverCallModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		call:    call,
		start:   start,
		started: started,
	}
}

func (m serverCallModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m serverCallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case callFinishedMsg:
		m.finished = &msg
		m.outcome = callOutcome(m.call, msg)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m serverCallModel) View() string {
	if m.finished != nil {
		return m.outcome + "\n"
	}
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.call.label,
		callTimeStyle.Render(time.Since(m.started).Truncate(100*time.Millisecond).String()))
}

func (m serverCallModel) err() error {
	if m.finished == nil {
		return nil
	}
	return m.finished.err
}

// callOutcome is the line left on the terminal once a call has finished.
func callOutcome(call serverCall, done callFinishedMsg) string {
	took := callTimeStyle.Render(fmt.Sprintf("(%s)", done.elapsed.Round(time.Millisecond)))
	if done.err != nil {
		return fmt.Sprintf("%s %s %s", callFailedStyle.Render("x"), call.label, took)
	}

	text := call.label
	if call.summary != nil {
		if summary := call.summary(); summary != "" {
			text = summary
		}
	}
	return fmt.Sprintf("%s %s %s", callOKStyle.Render("ok"), text, took)
}

// runServerCall shows progress for call on output and leaves its outcome
// behind once the server has answered.
func runServerCall(ctx context.Context, output io.Writer, call serverCall) error {
	started := time.Now()
	start := func() tea.Msg {
		err := call.run(ctx)
		return callFinishedMsg{elapsed: time.Since(started), err: err}
	}

	p := tea.NewProgram(
		newServerCallModel(call, start, started),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(serverCallModel)
	if !ok {
		return fmt.Errorf("unexpected final server call model type %T", finalModel)
	}
	return result.err()
}
