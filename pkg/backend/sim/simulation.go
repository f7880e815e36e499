// Package sim provides an in-memory backend for tests, built on tcell's
// simulation screen. It adds input injection and screen capture so engine
// behavior can be asserted frame by frame.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/backend/tcell"
	"github.com/weftui/weft/pkg/terminal"
)

// Backend is a headless backend with a fixed, resizable cell grid.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// Resize changes the simulated terminal size without posting an event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetSize(width, height)
}

// InjectKey posts a key event into the input queue.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// Type posts each rune of text as a printable keypress.
func (s *Backend) Type(text string) {
	for _, r := range text {
		s.InjectKey(terminal.KeyRune, r)
	}
}

// InjectResize resizes the simulated terminal and posts a resize event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// rowText reads one row of the screen between columns x and x+w. The
// caller holds the lock.
func (s *Backend) rowText(y, x, w int) string {
	var b strings.Builder
	for col := x; col < x+w; col++ {
		mainc, comb, _, _ := s.screen.GetContent(col, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
		for _, r := range comb {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Rows returns the visible screen content, one string per row.
func (s *Backend) Rows() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = s.rowText(y, 0, w)
	}
	return rows
}

// Capture returns the visible screen as newline-joined rows.
func (s *Backend) Capture() string {
	return strings.Join(s.Rows(), "\n")
}

// CaptureRegion returns the content of a rectangular screen region.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		rows = append(rows, s.rowText(row, x, w))
	}
	return strings.Join(rows, "\n")
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, c, ts, _ := s.screen.GetContent(x, y)
	return m, c, importStyle(ts)
}

// FindText returns the screen position of text, or (-1, -1).
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range s.Rows() {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

var attrTable = []struct {
	theirs tcellv2.AttrMask
	ours   backend.AttrMask
}{
	{tcellv2.AttrBold, backend.AttrBold},
	{tcellv2.AttrItalic, backend.AttrItalic},
	{tcellv2.AttrUnderline, backend.AttrUnderline},
	{tcellv2.AttrDim, backend.AttrDim},
	{tcellv2.AttrBlink, backend.AttrBlink},
	{tcellv2.AttrReverse, backend.AttrReverse},
	{tcellv2.AttrStrikeThrough, backend.AttrStrikeThrough},
}

// importStyle converts a captured tcell style back into the engine's
// style type so tests can compare against theme lookups.
func importStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(importColor(fg)).
		Background(importColor(bg))
	for _, pair := range attrTable {
		if attrs&pair.theirs != 0 {
			style = style.Attr(pair.ours, true)
		}
	}
	return style
}

func importColor(tc tcellv2.Color) backend.Color {
	switch {
	case tc == tcellv2.ColorDefault:
		return backend.ColorDefault
	case tc&tcellv2.ColorIsRGB != 0:
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	default:
		return backend.Color(tc & 0xFF)
	}
}

var _ backend.Backend = (*Backend)(nil)
