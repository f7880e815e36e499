package widgets

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/weftui/weft/pkg/core"
	"github.com/weftui/weft/pkg/terminal"
)

// TextInput is a single-line editable text field with cursor movement,
// word operations, and a placeholder. Content is held as runes so the
// cursor lands on character boundaries regardless of encoding.
type TextInput struct {
	Base
	runes       []rune
	cursor      int
	placeholder string
	obscured    bool

	// OnChange runs after every edit with the new content.
	OnChange func(text string)

	// OnSubmit runs on Enter with the current content.
	OnSubmit func(text string)
}

// NewTextInput creates an empty input.
func NewTextInput() *TextInput {
	return &TextInput{}
}

// SetPlaceholder sets the hint shown while the input is empty.
func (in *TextInput) SetPlaceholder(text string) { in.placeholder = text }

// Obscure masks the content, for password entry.
func (in *TextInput) Obscure() { in.obscured = true }

// Reveal undoes Obscure.
func (in *TextInput) Reveal() { in.obscured = false }

// Text returns the current content.
func (in *TextInput) Text() string { return string(in.runes) }

// SetText replaces the content and moves the cursor to the end.
func (in *TextInput) SetText(text string) {
	in.runes = []rune(text)
	in.cursor = len(in.runes)
}

// Clear empties the input.
func (in *TextInput) Clear() {
	in.runes = in.runes[:0]
	in.cursor = 0
	in.notifyChange()
}

// Cursor returns the cursor position in runes.
func (in *TextInput) Cursor() int { return in.cursor }

func (in *TextInput) notifyChange() {
	if in.OnChange != nil {
		in.OnChange(string(in.runes))
	}
}

func (in *TextInput) insert(rs []rune) {
	in.runes = append(in.runes[:in.cursor], append(append([]rune{}, rs...), in.runes[in.cursor:]...)...)
	in.cursor += len(rs)
	in.notifyChange()
}

// wordLeft returns the cursor position at the start of the previous word.
func (in *TextInput) wordLeft() int {
	pos := in.cursor
	for pos > 0 && in.runes[pos-1] == ' ' {
		pos--
	}
	for pos > 0 && in.runes[pos-1] != ' ' {
		pos--
	}
	return pos
}

func (in *TextInput) Kind() string { return "input" }

func (in *TextInput) ContentSize() core.Size {
	return core.Size{Width: runewidth.StringWidth(string(in.runes)) + 1, Height: 1}
}

func (in *TextInput) display() string {
	if in.obscured {
		return strings.Repeat("*", len(in.runes))
	}
	return string(in.runes)
}

func (in *TextInput) Paint(ctx core.PaintContext) {
	style := ctx.Style("input")
	w := ctx.Bounds.Width

	if len(in.runes) == 0 && !in.Focused() && in.placeholder != "" {
		ctx.Print(0, 0, in.placeholder, ctx.Style("input.placeholder"))
		return
	}

	text := []rune(in.display())

	// Window the text so the cursor cell stays visible. Widths are in
	// display cells, not runes: a wide rune consumes two columns.
	start := 0
	for start < in.cursor && runewidth.StringWidth(string(text[start:in.cursor]))+in.cursorCell(text) > w {
		start++
	}
	ctx.Print(0, 0, string(text[start:]), style)

	if in.Focused() {
		cx := runewidth.StringWidth(string(text[start:in.cursor]))
		ch := ' '
		if in.cursor < len(text) {
			ch = text[in.cursor]
		}
		ctx.SetCell(cx, 0, ch, ctx.Style("input.cursor"))
	}
}

// cursorCell returns the display width of the cell under the cursor.
func (in *TextInput) cursorCell(text []rune) int {
	if in.cursor < len(text) {
		return runewidth.RuneWidth(text[in.cursor])
	}
	return 1
}

func (in *TextInput) HandleKey(ev terminal.KeyEvent) bool {
	switch ev.Key {
	case terminal.KeyRune:
		in.insert([]rune{ev.Rune})
	case terminal.KeyEnter:
		if in.OnSubmit != nil {
			in.OnSubmit(string(in.runes))
		}
	case terminal.KeyBackspace:
		if in.cursor > 0 {
			in.runes = append(in.runes[:in.cursor-1], in.runes[in.cursor:]...)
			in.cursor--
			in.notifyChange()
		}
	case terminal.KeyDelete:
		if in.cursor < len(in.runes) {
			in.runes = append(in.runes[:in.cursor], in.runes[in.cursor+1:]...)
			in.notifyChange()
		}
	case terminal.KeyLeft:
		if ev.Ctrl {
			in.cursor = in.wordLeft()
		} else if in.cursor > 0 {
			in.cursor--
		}
	case terminal.KeyRight:
		if in.cursor < len(in.runes) {
			in.cursor++
		}
	case terminal.KeyHome, terminal.KeyCtrlA:
		in.cursor = 0
	case terminal.KeyEnd, terminal.KeyCtrlE:
		in.cursor = len(in.runes)
	case terminal.KeyCtrlK:
		if in.cursor < len(in.runes) {
			in.runes = in.runes[:in.cursor]
			in.notifyChange()
		}
	case terminal.KeyCtrlU:
		if in.cursor > 0 {
			in.runes = append([]rune{}, in.runes[in.cursor:]...)
			in.cursor = 0
			in.notifyChange()
		}
	case terminal.KeyCtrlW:
		if in.cursor > 0 {
			cut := in.wordLeft()
			in.runes = append(in.runes[:cut], in.runes[in.cursor:]...)
			in.cursor = cut
			in.notifyChange()
		}
	default:
		return false
	}
	return true
}

// HandlePaste inserts pasted text as a single edit, newlines folded to
// spaces.
func (in *TextInput) HandlePaste(text string) bool {
	flat := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, text)
	in.insert([]rune(flat))
	return true
}

var (
	_ core.Painter      = (*TextInput)(nil)
	_ core.Measurer     = (*TextInput)(nil)
	_ core.KeyHandler   = (*TextInput)(nil)
	_ core.PasteHandler = (*TextInput)(nil)
	_ core.FocusAware   = (*TextInput)(nil)
)
