package domain

type RoundStatus string

const (
	RoundStatusInProgress RoundStatus = "in_progress"
	RoundStatusWon        RoundStatus = "won"
	RoundStatusLost       RoundStatus = "lost"
)

func (s RoundStatus) Label() string {
	switch s {
	case RoundStatusInProgress:
		return "in progress"
	case RoundStatusWon:
		return "won"
	case RoundStatusLost:
		return "lost"
	default:
		return string(s)
	}
}

func (s RoundStatus) Terminal() bool {
	return s == RoundStatusWon || s == RoundStatusLost
}
