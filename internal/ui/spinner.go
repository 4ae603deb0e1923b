package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner renders an animated progress indicator on stderr while a
// long-running operation is in flight. When stderr is not a terminal it
// degrades to a single plain line so piped output stays readable.
type Spinner struct {
	text string

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
	tty     bool
}

// NewSpinner returns a spinner with the given status text.
func NewSpinner(text string) *Spinner {
	return &Spinner{
		text: text,
		tty:  stderrColor && isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Start begins the animation. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	if !s.tty {
		fmt.Fprintf(writer, "%s...\n", s.text)
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.spin()
}

func (s *Spinner) spin() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-s.stop:
			// Clear the spinner line before handing the terminal back.
			fmt.Fprint(writer, "\r\033[K")
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(writer, "\r%s %s", ansiStderr("32", frame), s.text)
			i++
		}
	}
}

// Stop ends the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false

	if !s.tty {
		return
	}
	close(s.stop)
	<-s.done
}

// WithSpinner runs fn while displaying a spinner with the given text.
// The spinner is stopped before the error (if any) is returned.
func WithSpinner(text string, fn func() error) error {
	sp := NewSpinner(text)
	sp.Start()
	defer sp.Stop()
	return fn()
}
