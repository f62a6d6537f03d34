package play

import (
	"context"
	"testing"

	"github.com/bnema/guess-my-number-cli/internal/application"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/bnema/guess-my-number-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeTransitionsClosesChannelOnStop(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Guess(anyContext(), 7).Return(domain.GuessOutcome{Message: "🎉 Correct!", IsGuessed: true}, nil).Once()
	oracle.EXPECT().StartGame(anyContext()).Return(domain.GameBounds{Min: 1, Max: 20}, nil).Once()
	ctrl := application.NewSessionController(domain.GameConfig{InitialScore: 10, APIBaseURL: "http://oracle.test"}, oracle)

	transitions, stop := subscribeTransitions(ctrl)

	_, err := ctrl.SubmitGuess(context.Background(), "7")
	require.NoError(t, err)
	tr := <-transitions
	assert.Equal(t, domain.RoundStatusWon, tr.To)

	stop()
	stop()

	assert.NotPanics(t, func() { ctrl.NewGame(context.Background()) })

	_, open := <-transitions
	assert.False(t, open)

	m := newModel(context.Background(), ctrl, transitions)
	cmd := m.waitForTransition()
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
}
