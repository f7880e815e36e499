package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/signal"
)

// SpinnerFrames are the default spinner animation frames.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DotsFrames are a simpler dots animation.
var DotsFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner is an activity indicator for long-running work. It advances
// on the loop's tick signal, so a loop configured with a TickRate
// animates every running spinner without extra plumbing.
type Spinner struct {
	message string
	frames  []string
	current int
	running bool
}

// NewSpinner creates a stopped spinner with the default frames.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message, frames: SpinnerFrames}
}

// SetFrames replaces the animation frames.
func (s *Spinner) SetFrames(frames []string) {
	if len(frames) > 0 {
		s.frames = frames
		s.current = 0
	}
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) { s.message = message }

// Start begins animating.
func (s *Spinner) Start() { s.running = true }

// Stop freezes the spinner on its current frame.
func (s *Spinner) Stop() { s.running = false }

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool { return s.running }

func (s *Spinner) Kind() string { return "spinner" }

func (s *Spinner) ContentSize() core.Size {
	return core.Size{Width: 2 + runewidth.StringWidth(s.message), Height: 1}
}

func (s *Spinner) Paint(ctx core.PaintContext) {
	style := ctx.Style("text")
	if s.running {
		ctx.Print(0, 0, s.frames[s.current], style.Bold(true))
	}
	ctx.Print(2, 0, s.message, style)
}

// ReceiveSignal advances the animation on tick signals. Ticks propagate,
// so every running spinner in the subtree advances and repaints.
func (s *Spinner) ReceiveSignal(sig signal.Signal) bool {
	if sig.Name != core.SignalTick || !s.running {
		return false
	}
	s.current = (s.current + 1) % len(s.frames)
	return true
}

var (
	_ core.Painter        = (*Spinner)(nil)
	_ core.Measurer       = (*Spinner)(nil)
	_ core.SignalReceiver = (*Spinner)(nil)
)
