// Package tcell implements the backend interface on gdamore/tcell.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/terminal"
)

// Backend drives a real terminal through tcell.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste accumulates key events between paste markers.
	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a backend bound to the process terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen. Used by the simulation
// backend and by tests.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init acquires the terminal and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent writes one cell into tcell's buffer.
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, toTcellStyle(style))
}

// Show commits buffered writes.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear erases the screen buffer.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the hardware cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor is a no-op for tcell; the cursor appears when positioned.
func (b *Backend) ShowCursor() {}

// SetCursorPos places and reveals the hardware cursor.
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks for the next event, folding tcell's paste begin/end
// markers into a single PasteEvent.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return terminal.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		if out := fromTcellEvent(ev); out != nil {
			return out
		}
	}
}

// PostEvent injects a synthetic event into tcell's queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	if tev := toTcellEvent(ev); tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep rings the bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full repaint.
func (b *Backend) Sync() {
	b.screen.Sync()
}

func toTcellStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

func toTcellColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func fromTcellEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return terminal.KeyEvent{
			Key:   fromTcellKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&tcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
			Shift: e.Modifiers()&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: fromTcellButton(e.Buttons()),
			Action: fromTcellAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	default:
		return nil
	}
}

func fromTcellKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyBacktab:
		return terminal.KeyBackTab
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyPgUp:
		return terminal.KeyPageUp
	case tcell.KeyPgDn:
		return terminal.KeyPageDown
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyInsert:
		return terminal.KeyInsert
	case tcell.KeyF1:
		return terminal.KeyF1
	case tcell.KeyF2:
		return terminal.KeyF2
	case tcell.KeyF3:
		return terminal.KeyF3
	case tcell.KeyF4:
		return terminal.KeyF4
	case tcell.KeyF5:
		return terminal.KeyF5
	case tcell.KeyF6:
		return terminal.KeyF6
	case tcell.KeyF7:
		return terminal.KeyF7
	case tcell.KeyF8:
		return terminal.KeyF8
	case tcell.KeyF9:
		return terminal.KeyF9
	case tcell.KeyF10:
		return terminal.KeyF10
	case tcell.KeyF11:
		return terminal.KeyF11
	case tcell.KeyF12:
		return terminal.KeyF12
	case tcell.KeyCtrlA:
		return terminal.KeyCtrlA
	case tcell.KeyCtrlC:
		return terminal.KeyCtrlC
	case tcell.KeyCtrlE:
		return terminal.KeyCtrlE
	case tcell.KeyCtrlK:
		return terminal.KeyCtrlK
	case tcell.KeyCtrlU:
		return terminal.KeyCtrlU
	case tcell.KeyCtrlW:
		return terminal.KeyCtrlW
	default:
		return terminal.KeyNone
	}
}

func fromTcellButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func fromTcellAction(buttons tcell.ButtonMask) terminal.MouseAction {
	if buttons == tcell.ButtonNone {
		return terminal.MouseRelease
	}
	return terminal.MousePress
}

func toTcellEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		return tcell.NewEventKey(toTcellKey(e.Key), e.Rune, toTcellMods(e))
	default:
		return nil
	}
}

func toTcellKey(k terminal.Key) tcell.Key {
	switch k {
	case terminal.KeyRune:
		return tcell.KeyRune
	case terminal.KeyEnter:
		return tcell.KeyEnter
	case terminal.KeyBackspace:
		return tcell.KeyBackspace2
	case terminal.KeyTab:
		return tcell.KeyTab
	case terminal.KeyBackTab:
		return tcell.KeyBacktab
	case terminal.KeyEscape:
		return tcell.KeyEscape
	case terminal.KeyUp:
		return tcell.KeyUp
	case terminal.KeyDown:
		return tcell.KeyDown
	case terminal.KeyLeft:
		return tcell.KeyLeft
	case terminal.KeyRight:
		return tcell.KeyRight
	case terminal.KeyHome:
		return tcell.KeyHome
	case terminal.KeyEnd:
		return tcell.KeyEnd
	case terminal.KeyPageUp:
		return tcell.KeyPgUp
	case terminal.KeyPageDown:
		return tcell.KeyPgDn
	case terminal.KeyDelete:
		return tcell.KeyDelete
	default:
		return tcell.KeyRune
	}
}

func toTcellMods(e terminal.KeyEvent) tcell.ModMask {
	var mods tcell.ModMask
	if e.Alt {
		mods |= tcell.ModAlt
	}
	if e.Ctrl {
		mods |= tcell.ModCtrl
	}
	if e.Shift {
		mods |= tcell.ModShift
	}
	return mods
}

var _ backend.Backend = (*Backend)(nil)
