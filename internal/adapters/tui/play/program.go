package play

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/guess-my-number-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Subscriber is implemented by controllers that publish round transitions.
type Subscriber interface {
	Subscribe(fn func(domain.Transition)) func()
}

type Options struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

func Run(ctx context.Context, ctrl Controller, opts Options) error {
	var transitions <-chan domain.Transition
	if sub, ok := ctrl.(Subscriber); ok {
		ch, stop := subscribeTransitions(sub)
		defer stop()
		transitions = ch
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newModel(ctx, ctrl, transitions), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	return nil
}

// subscribeTransitions forwards transitions into a buffered channel, dropping
// them when it is full. stop unsubscribes and closes the channel.
func subscribeTransitions(sub Subscriber) (<-chan domain.Transition, func()) {
	var (
		mu     sync.Mutex
		closed bool
	)
	ch := make(chan domain.Transition, 8)

	unsubscribe := sub.Subscribe(func(tr domain.Transition) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- tr:
		default:
		}
	})

	var once sync.Once
	stop := func() {
		once.Do(func() {
			unsubscribe()
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}

	return ch, stop
}
