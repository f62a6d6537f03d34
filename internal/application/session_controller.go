package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/bnema/guess-my-number-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// SessionController owns the state of one play-through and is the only
// writer of it. Oracle calls are made without holding the lock; every call is
// tagged with the round that issued it and its result is dropped if a new
// game started in the meantime.
type SessionController struct {
	cfg        domain.GameConfig
	oracle     ports.Oracle
	logger     zerolog.Logger
	newRoundID func() domain.RoundID

	mu           sync.Mutex
	state        domain.SessionState
	guessPending bool
	observers    map[int]func(domain.Transition)
	nextObserver int
}

type ControllerOption func(*SessionController)

func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(s *SessionController) {
		s.logger = logger
	}
}

func WithRoundIDGenerator(fn func() domain.RoundID) ControllerOption {
	return func(s *SessionController) {
		if fn != nil {
			s.newRoundID = fn
		}
	}
}

func NewSessionController(cfg domain.GameConfig, oracle ports.Oracle, opts ...ControllerOption) *SessionController {
	s := &SessionController{
		cfg:        cfg,
		oracle:     oracle,
		logger:     zerolog.Nop(),
		newRoundID: newRoundID,
		observers:  map[int]func(domain.Transition){},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = domain.SessionState{
		Score:   cfg.InitialScore,
		Message: domain.MessageStart,
		Round:   s.newRoundID(),
	}

	return s
}

func (s *SessionController) Config() domain.GameConfig {
	return s.cfg
}

func (s *SessionController) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// SetInput records the raw text as the player types it.
func (s *SessionController) SetInput(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.UserInput = raw
}

// Subscribe registers fn for round status changes. The returned func removes it.
func (s *SessionController) Subscribe(fn func(domain.Transition)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// StartGame asks the oracle for a new range. Score is left alone.
func (s *SessionController) StartGame(ctx context.Context) error {
	s.mu.Lock()
	round := s.state.Round
	s.mu.Unlock()

	bounds, err := s.oracle.StartGame(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Round != round {
		s.logger.Debug().Err(err).Str("round", string(round)).Msg("dropping start game response from previous round")
		return domain.ErrStaleResponse
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("round", string(round)).Msg("start game failed")
		return fmt.Errorf("%w: start game: %w", domain.ErrOracleUnavailable, err)
	}

	s.state.Bounds = &bounds
	s.logger.Debug().Int("min", bounds.Min).Int("max", bounds.Max).Msg("game bounds updated")

	return nil
}

func (s *SessionController) SubmitGuess(ctx context.Context, raw string) (domain.SessionState, error) {
	s.mu.Lock()
	if s.state.IsGuessed {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, domain.ErrRoundOver
	}

	s.state.UserInput = raw

	guess, ok := parseGuess(raw)
	if !ok {
		s.state.Message = domain.MessageNoNumber
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, nil
	}

	if s.state.Score <= 1 {
		from := s.state.Status()
		s.state.Message = domain.MessageLost
		s.state.Score = 0
		snapshot := s.state.Clone()
		s.mu.Unlock()

		s.notify(from, snapshot)
		return snapshot, nil
	}

	if s.guessPending {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, domain.ErrGuessInFlight
	}

	s.guessPending = true
	round := s.state.Round
	s.mu.Unlock()

	outcome, err := s.oracle.Guess(ctx, guess)

	s.mu.Lock()
	current := s.state.Round == round
	if current {
		s.guessPending = false
	}

	// A round replaced by NewGame ignores both answers and failures.
	if !current {
		snapshot := s.state.Clone()
		s.mu.Unlock()

		s.logger.Debug().Err(err).Int("guess", guess).Str("round", string(round)).Msg("dropping guess response from previous round")
		return snapshot, domain.ErrStaleResponse
	}

	if err != nil {
		snapshot := s.state.Clone()
		s.mu.Unlock()

		s.logger.Error().Err(err).Int("guess", guess).Str("round", string(round)).Msg("guess failed")
		return snapshot, fmt.Errorf("%w: submit guess: %w", domain.ErrOracleUnavailable, err)
	}

	from := s.state.Status()
	s.state.Message = outcome.Message
	s.state.IsGuessed = outcome.IsGuessed
	if !outcome.IsGuessed {
		s.state.Score = lo.Clamp(s.state.Score-1, 0, s.cfg.InitialScore)
	}
	if outcome.IsGuessed && s.state.Score > s.state.Highscore {
		s.state.Highscore = s.state.Score
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.notify(from, snapshot)
	return snapshot, nil
}

// NewGame resets the round unconditionally and fetches a fresh range. A failed
// start-game call is logged and otherwise ignored; the previous bounds stay.
func (s *SessionController) NewGame(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	from := s.state.Status()
	s.state.Round = s.newRoundID()
	s.state.Score = s.cfg.InitialScore
	s.state.UserInput = ""
	s.state.Message = domain.MessageStart
	s.state.IsGuessed = false
	s.guessPending = false
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.notify(from, snapshot)

	_ = s.StartGame(ctx)

	return s.State()
}

func (s *SessionController) notify(from domain.RoundStatus, state domain.SessionState) {
	to := state.Status()
	if from == to {
		return
	}

	s.logger.Info().
		Str("from", string(from)).
		Str("to", string(to)).
		Int("score", state.Score).
		Int("highscore", state.Highscore).
		Msg("round status changed")

	s.mu.Lock()
	observers := lo.Values(s.observers)
	s.mu.Unlock()

	transition := domain.Transition{From: from, To: to, State: state}
	for _, fn := range observers {
		fn(transition)
	}
}

func parseGuess(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	guess, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}

	return guess, true
}

func newRoundID() domain.RoundID {
	return domain.RoundID(uuid.NewString())
}
