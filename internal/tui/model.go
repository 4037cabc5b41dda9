package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"droidbridge/internal/app"
)

// Messages for the wrapper model.
type (
	progressMsg struct {
		current int
		total   int
		name    string
	}
	doneMsg struct {
		err error
	}
)

// model is a purely cosmetic wrapper around one blocking operation: a spinner
// with an optional per-file progress bar. It never alters the ordering or
// timing of the operation and quits deterministically when the operation
// returns.
type model struct {
	label   string
	spinner spinner.Model
	bar     progress.Model

	current int
	total   int
	name    string

	err  error
	done bool
}

func newModel(label string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	b := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return model{label: label, spinner: s, bar: b}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		m.current = msg.current
		m.total = msg.total
		m.name = msg.name
		return m, nil
	case doneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	}
	// The underlying transports expose no partial-cancel semantics, so key
	// presses are deliberately ignored here.
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	line := fmt.Sprintf("%s %s", m.spinner.View(), labelStyle.Render(m.label))
	if m.total > 0 {
		line += fmt.Sprintf("\n  %s %s",
			m.bar.ViewAs(float64(m.current)/float64(m.total)),
			detailStyle.Render(fmt.Sprintf("%d/%d %s", m.current, m.total, m.name)))
	}
	return line + "\n"
}

// Run executes op while rendering the wrapper. The op receives a progress
// callback it may call per item; the wrapper shuts down when op returns and
// op's error is passed through unchanged.
func Run(label string, op func(report app.ProgressFunc) error) error {
	p := tea.NewProgram(newModel(label))

	result := make(chan error, 1)
	go func() {
		err := op(func(current, total int, name string) {
			p.Send(progressMsg{current: current, total: total, name: name})
		})
		result <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		// Rendering failed (no TTY, for example). The operation itself is
		// unaffected; wait for it and report its outcome.
		return <-result
	}
	return <-result
}
