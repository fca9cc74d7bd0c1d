package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerInterval is the frame rate for the animated spinner.
const spinnerInterval = 120 * time.Millisecond

// Spinner is a stderr spinner that is only active on a TTY. A nil *Spinner
// is valid and all methods become no-ops, so callers never branch on
// terminal capabilities.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner returns a spinner writing to stderr, or nil when the terminal
// cannot display one. suffix is shown after the spinner glyph.
func NewSpinner(caps TerminalCapabilities, suffix string) *Spinner {
	if !caps.IsTTY {
		return nil
	}

	symbols := SelectSymbols(caps)
	inner := spinner.New(spinner.CharSets[symbols.SpinnerSet], spinnerInterval, spinner.WithWriter(os.Stderr))
	inner.Suffix = suffix
	return &Spinner{inner: inner}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if s == nil {
		return
	}
	s.inner.Start()
}

// Stop halts the animation and clears the spinner line. Safe to call while
// stopped, which makes pause-render-resume cycles simple.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.inner.Stop()
}
