package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/signal"
)

// SignalStatus updates every StatusLine in the flushed subtree. Payload
// keys: "message" (string) and "error" (bool).
const SignalStatus = "status"

// StatusLine is a one-line message bar fed through the signal router.
// Bubbling or flushing a SignalStatus signal updates it; an empty
// message restores the default text.
type StatusLine struct {
	fallback string
	message  string
	isError  bool
}

// NewStatusLine creates a status line showing fallback when idle.
func NewStatusLine(fallback string) *StatusLine {
	return &StatusLine{fallback: fallback}
}

// SetMessage shows a message directly, bypassing the signal path.
func (s *StatusLine) SetMessage(message string, isError bool) {
	s.message = message
	s.isError = isError
}

// Message returns the currently displayed text.
func (s *StatusLine) Message() string {
	if s.message == "" {
		return s.fallback
	}
	return s.message
}

func (s *StatusLine) Kind() string { return "statusline" }

func (s *StatusLine) ContentSize() core.Size {
	return core.Size{Width: runewidth.StringWidth(s.Message()), Height: 1}
}

func (s *StatusLine) Paint(ctx core.PaintContext) {
	style := ctx.Style("status")
	if s.isError {
		style = style.Bold(true).Reverse(true)
	}
	ctx.Print(0, 0, s.Message(), style)
}

func (s *StatusLine) ReceiveSignal(sig signal.Signal) bool {
	if sig.Name != SignalStatus {
		return false
	}
	s.message = sig.String("message")
	s.isError = sig.Bool("error")
	return true
}

var (
	_ core.Painter        = (*StatusLine)(nil)
	_ core.Measurer       = (*StatusLine)(nil)
	_ core.SignalReceiver = (*StatusLine)(nil)
)
