package ports

import (
	"context"

	"github.com/bnema/guess-my-number-cli/internal/domain"
)

// Oracle is the remote game service. It picks the secret number and judges
// guesses; the client never sees how.
type Oracle interface {
	StartGame(ctx context.Context) (domain.GameBounds, error)
	Guess(ctx context.Context, guess int) (domain.GuessOutcome, error)
}
