package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Input replaces the state's recorded input, e.g. with a live text field.
	Input string
	// Pending marks an oracle call in flight.
	Pending string
	// Alert is shown above everything else until dismissed.
	Alert string
	Help  string
	// Framed paints a background around the view.
	Framed bool
	// Highlight switches the frame to the win colour.
	Highlight bool
}

func renderView(state domain.SessionState, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Guess My Number!")}

	if state.Bounds != nil {
		lines = append(lines, s.between.Render(betweenLabel(*state.Bounds)))
	}
	lines = append(lines, "", s.number.Render(secretLabel(state)), "")

	input := opts.Input
	if input == "" {
		input = s.input.Render(state.UserInput)
	}
	guessLine := s.label.Render("guess:") + " " + input
	if hint := outsideLabel(state); hint != "" {
		guessLine += " " + s.help.Render(hint)
	}
	lines = append(lines, guessLine)

	if opts.Pending != "" {
		lines = append(lines, opts.Pending)
	}

	lines = append(lines,
		"",
		s.message.Render(state.Message),
		s.label.Render("💯 Score:")+" "+s.value.Render(fmt.Sprintf("%d", state.Score)),
		s.label.Render("🥇 Highscore:")+" "+s.value.Render(fmt.Sprintf("%d", state.Highscore)),
		s.status.Render("round: "+state.Status().Label()),
	)

	if opts.Help != "" {
		lines = append(lines, "", s.help.Render(opts.Help))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if opts.Alert != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, s.warning.Render(opts.Alert), "", body)
	}

	if !opts.Framed {
		return body
	}

	switch {
	case opts.Highlight:
		return s.frameWon.Render(body)
	case state.Status() == domain.RoundStatusLost:
		return s.frameLost.Render(body)
	default:
		return s.frame.Render(body)
	}
}

func betweenLabel(bounds domain.GameBounds) string {
	return fmt.Sprintf("(Between %d and %d)", bounds.Min, bounds.Max)
}

// outsideLabel flags a numeric input that cannot be the secret number.
func outsideLabel(state domain.SessionState) string {
	if state.Bounds == nil || state.IsGuessed {
		return ""
	}
	n, err := strconv.Atoi(strings.TrimSpace(state.UserInput))
	if err != nil || state.Bounds.Contains(n) {
		return ""
	}
	return fmt.Sprintf("(outside %d–%d)", state.Bounds.Min, state.Bounds.Max)
}

func secretLabel(state domain.SessionState) string {
	if state.IsGuessed {
		if guess := strings.TrimSpace(state.UserInput); guess != "" {
			return guess
		}
	}
	return "?"
}
