package play

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)
}

type boundsFetchedMsg struct {
	bounds domain.GameBounds
	err    error
}

// boundsModel shows a spinner until a single start-game call answers.
type boundsModel struct {
	spinner spinner.Model
	label   string
	fetch   tea.Cmd

	bounds domain.GameBounds
	err    error
	done   bool
}

func newBoundsModel(label string, fetch tea.Cmd) boundsModel {
	return boundsModel{
		spinner: newSpinner(),
		label:   label,
		fetch:   fetch,
	}
}

func (m boundsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m boundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case boundsFetchedMsg:
		m.done = true
		m.bounds = msg.bounds
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m boundsModel) View() string {
	if m.done {
		return ""
	}

	return m.spinner.View() + " " + m.label
}

// FetchBounds runs fetch under a spinner written to output and returns the
// range it produced.
func FetchBounds(ctx context.Context, output io.Writer, label string, fetch func(context.Context) (domain.GameBounds, error)) (domain.GameBounds, error) {
	fetchCmd := func() tea.Msg {
		bounds, err := fetch(ctx)
		return boundsFetchedMsg{bounds: bounds, err: err}
	}

	p := tea.NewProgram(
		newBoundsModel(label, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.GameBounds{}, fmt.Errorf("run spinner: %w", err)
	}

	result, ok := finalModel.(boundsModel)
	if !ok {
		return domain.GameBounds{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.bounds, result.err
}
