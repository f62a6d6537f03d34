package play

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/guess-my-number-cli/internal/adapters/render/session"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = "enter: check!  ctrl+n: new game!  esc: quit"

// Controller is the part of the session controller the game screen drives.
type Controller interface {
	State() domain.SessionState
	SetInput(raw string)
	StartGame(ctx context.Context) error
	SubmitGuess(ctx context.Context, raw string) (domain.SessionState, error)
	NewGame(ctx context.Context) domain.SessionState
}

type guessResultMsg struct {
	state domain.SessionState
	err   error
}

type newGameMsg struct {
	state domain.SessionState
}

type startGameMsg struct {
	state domain.SessionState
}

type transitionMsg struct {
	transition domain.Transition
}

type model struct {
	ctx         context.Context
	ctrl        Controller
	transitions <-chan domain.Transition

	input   textinput.Model
	spinner spinner.Model
	state   domain.SessionState
	pending bool
	alert   string
	won     bool
}

func newModel(ctx context.Context, ctrl Controller, transitions <-chan domain.Transition) model {
	input := textinput.New()
	input.Placeholder = "number"
	input.CharLimit = 12
	input.Width = 12
	input.Focus()

	state := ctrl.State()
	return model{
		ctx:         ctx,
		ctrl:        ctrl,
		transitions: transitions,
		input:       input,
		spinner:     newSpinner(),
		state:       state,
		won:         state.Status() == domain.RoundStatusWon,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.startGame(), m.waitForTransition())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case guessResultMsg:
		m.pending = false
		m.state = msg.state
		if errors.Is(msg.err, domain.ErrOracleUnavailable) {
			m.alert = fmt.Sprintf("Error fetching guess:\n%v\n\n(press enter)", msg.err)
		}
		return m, nil
	case newGameMsg:
		m.pending = false
		m.state = msg.state
		m.input.Reset()
		return m, nil
	case startGameMsg:
		m.state = msg.state
		return m, nil
	case transitionMsg:
		m.won = msg.transition.To == domain.RoundStatusWon
		return m, m.waitForTransition()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.alert != "" {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			m.alert = ""
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlN:
		if m.pending {
			return m, nil
		}
		m.pending = true
		return m, m.newGame()
	case tea.KeyEnter:
		if m.pending || m.state.IsGuessed {
			return m, nil
		}
		m.pending = true
		return m, m.submitGuess(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	m.state.UserInput = m.input.Value()
	return m, cmd
}

func (m model) View() string {
	pending := ""
	if m.pending {
		pending = m.spinner.View() + " checking..."
	}

	return session.View(m.state, session.RenderOptions{
		Input:     m.input.View(),
		Pending:   pending,
		Alert:     m.alert,
		Help:      helpText,
		Framed:    true,
		Highlight: m.won,
	})
}

func (m model) submitGuess(raw string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		state, err := ctrl.SubmitGuess(ctx, raw)
		return guessResultMsg{state: state, err: err}
	}
}

func (m model) newGame() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return newGameMsg{state: ctrl.NewGame(ctx)}
	}
}

func (m model) startGame() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_ = ctrl.StartGame(ctx)
		return startGameMsg{state: ctrl.State()}
	}
}

func (m model) waitForTransition() tea.Cmd {
	if m.transitions == nil {
		return nil
	}
	transitions := m.transitions
	return func() tea.Msg {
		transition, ok := <-transitions
		if !ok {
			return nil
		}
		return transitionMsg{transition: transition}
	}
}
