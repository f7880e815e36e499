package backend

// Color is a terminal color. Values 0-255 address the palette; values with
// the RGB bit set encode a 24-bit color.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbFlag Color = 0x01000000

// ColorRGB builds a 24-bit color from components.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16|int32(g)<<8|int32(b)) | rgbFlag
}

// IsRGB reports whether c is a 24-bit color rather than a palette index.
func (c Color) IsRGB() bool {
	return c > 0 && c&rgbFlag != 0
}

// RGB returns the components of a 24-bit color, or zeros for palette colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style is an immutable foreground/background/attribute triple. The zero
// value is not meaningful; start from DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal's default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns a copy with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

func (s Style) set(a AttrMask, on bool) Style {
	if on {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

// Attr returns a copy with one attribute bit toggled.
func (s Style) Attr(a AttrMask, on bool) Style { return s.set(a, on) }

// Bold returns a copy with bold toggled.
func (s Style) Bold(on bool) Style { return s.set(AttrBold, on) }

// Italic returns a copy with italic toggled.
func (s Style) Italic(on bool) Style { return s.set(AttrItalic, on) }

// Dim returns a copy with dim toggled.
func (s Style) Dim(on bool) Style { return s.set(AttrDim, on) }

// Underline returns a copy with underline toggled.
func (s Style) Underline(on bool) Style { return s.set(AttrUnderline, on) }

// Reverse returns a copy with reverse video toggled.
func (s Style) Reverse(on bool) Style { return s.set(AttrReverse, on) }

// Blink returns a copy with blink toggled.
func (s Style) Blink(on bool) Style { return s.set(AttrBlink, on) }

// StrikeThrough returns a copy with strikethrough toggled.
func (s Style) StrikeThrough(on bool) Style { return s.set(AttrStrikeThrough, on) }

// FG returns the foreground color.
func (s Style) FG() Color { return s.fg }

// BG returns the background color.
func (s Style) BG() Color { return s.bg }

// Attributes returns the attribute mask.
func (s Style) Attributes() AttrMask { return s.attrs }

// Decompose returns all three parts at once, for backend conversion.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
