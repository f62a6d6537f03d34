package play

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/guess-my-number-cli/internal/application"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/bnema/guess-my-number-cli/internal/ports/mocks"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func anyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func newTestModel(t *testing.T, initialScore int) (model, *mocks.MockOracle, chan domain.Transition) {
	t.Helper()

	oracle := mocks.NewMockOracle(t)
	ctrl := application.NewSessionController(domain.GameConfig{InitialScore: initialScore, APIBaseURL: "http://oracle.test"}, oracle)
	transitions := make(chan domain.Transition, 4)
	ctrl.Subscribe(func(tr domain.Transition) { transitions <- tr })

	return newModel(context.Background(), ctrl, transitions), oracle, transitions
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(model)
}

func press(t *testing.T, m model, key tea.KeyType) (model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(model), cmd
}

func deliver(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()

	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return updated.(model)
}

func TestStartGameShowsBounds(t *testing.T) {
	m, oracle, _ := newTestModel(t, 10)
	oracle.EXPECT().StartGame(anyContext()).Return(domain.GameBounds{Min: 1, Max: 20}, nil).Once()

	m = deliver(t, m, m.startGame())

	assert.Contains(t, m.View(), "(Between 1 and 20)")
}

func TestEnterSubmitsTypedGuess(t *testing.T) {
	m, oracle, _ := newTestModel(t, 10)
	oracle.EXPECT().Guess(anyContext(), 50).Return(domain.GuessOutcome{Message: "📈 Too high"}, nil).Once()

	m = typeText(t, m, "50")
	assert.Equal(t, "50", m.state.UserInput)
	assert.Equal(t, "50", m.ctrl.State().UserInput)

	m, cmd := press(t, m, tea.KeyEnter)
	assert.True(t, m.pending)
	assert.Contains(t, m.View(), "checking...")

	m = deliver(t, m, cmd)
	assert.False(t, m.pending)
	assert.Equal(t, 9, m.state.Score)
	assert.Contains(t, m.View(), "📈 Too high")
	assert.Contains(t, m.View(), "💯 Score: 9")
}

func TestEnterWithEmptyInputShowsNoNumber(t *testing.T) {
	m, _, _ := newTestModel(t, 10)

	m, cmd := press(t, m, tea.KeyEnter)
	m = deliver(t, m, cmd)

	assert.Equal(t, domain.MessageNoNumber, m.state.Message)
	assert.Equal(t, 10, m.state.Score)
}

func TestWinHighlightsAndDisablesCheck(t *testing.T) {
	m, oracle, transitions := newTestModel(t, 10)
	oracle.EXPECT().Guess(anyContext(), 7).Return(domain.GuessOutcome{Message: "🎉 Correct!", IsGuessed: true}, nil).Once()

	m = typeText(t, m, "7")
	m, cmd := press(t, m, tea.KeyEnter)
	m = deliver(t, m, cmd)

	updated, _ := m.Update(transitionMsg{transition: <-transitions})
	m = updated.(model)
	assert.True(t, m.won)
	assert.Contains(t, m.View(), "round: won")

	m, cmd = press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.pending)
}

func TestGuessFailureBlocksUntilAlertDismissed(t *testing.T) {
	m, oracle, _ := newTestModel(t, 10)
	oracle.EXPECT().Guess(anyContext(), 3).Return(domain.GuessOutcome{}, errors.New("status 503")).Once()

	m = typeText(t, m, "3")
	m, cmd := press(t, m, tea.KeyEnter)
	m = deliver(t, m, cmd)

	require.NotEmpty(t, m.alert)
	assert.Contains(t, m.View(), "Error fetching guess:")
	assert.Contains(t, m.View(), "status 503")
	assert.Equal(t, 10, m.state.Score)

	m = typeText(t, m, "9")
	assert.Equal(t, "3", m.input.Value())

	m, cmd = press(t, m, tea.KeyCtrlN)
	assert.Nil(t, cmd)

	m, _ = press(t, m, tea.KeyEnter)
	assert.Empty(t, m.alert)
}

func TestCtrlNStartsNewGame(t *testing.T) {
	m, oracle, transitions := newTestModel(t, 10)
	oracle.EXPECT().Guess(anyContext(), 7).Return(domain.GuessOutcome{Message: "🎉 Correct!", IsGuessed: true}, nil).Once()
	oracle.EXPECT().StartGame(anyContext()).Return(domain.GameBounds{Min: 1, Max: 50}, nil).Once()

	m = typeText(t, m, "7")
	m, cmd := press(t, m, tea.KeyEnter)
	m = deliver(t, m, cmd)
	updated, _ := m.Update(transitionMsg{transition: <-transitions})
	m = updated.(model)

	m, cmd = press(t, m, tea.KeyCtrlN)
	require.True(t, m.pending)
	m = deliver(t, m, cmd)
	updated, _ = m.Update(transitionMsg{transition: <-transitions})
	m = updated.(model)

	assert.False(t, m.won)
	assert.Equal(t, 10, m.state.Score)
	assert.Equal(t, 10, m.state.Highscore)
	assert.Equal(t, domain.MessageStart, m.state.Message)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "(Between 1 and 50)")
}

func TestEscQuits(t *testing.T) {
	m, _, _ := newTestModel(t, 10)

	_, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, fmt.Sprintf("%T", tea.Quit()), fmt.Sprintf("%T", cmd()))
}
