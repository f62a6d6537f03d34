package domain

type RoundID string

type GameBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether n lies within the inclusive range.
func (b GameBounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

type GuessOutcome struct {
	Message   string `json:"message"`
	IsGuessed bool   `json:"isGuessed"`
}

type SessionState struct {
	Score     int
	Highscore int
	UserInput string
	Message   string
	IsGuessed bool
	// Bounds is nil until the first start-game call succeeds.
	Bounds *GameBounds
	Round  RoundID
}

func (s SessionState) Status() RoundStatus {
	switch {
	case s.IsGuessed:
		return RoundStatusWon
	case s.Score <= 0:
		return RoundStatusLost
	default:
		return RoundStatusInProgress
	}
}

// Clone returns a copy that shares no memory with s.
func (s SessionState) Clone() SessionState {
	if s.Bounds != nil {
		bounds := *s.Bounds
		s.Bounds = &bounds
	}
	return s
}

type Transition struct {
	From  RoundStatus
	To    RoundStatus
	State SessionState
}
