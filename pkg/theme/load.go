package theme

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/weftui/weft/pkg/backend"
	"github.com/weftui/weft/pkg/errors"
)

// styleDoc is the YAML shape of one named style.
type styleDoc struct {
	FG    string   `yaml:"fg"`
	BG    string   `yaml:"bg"`
	Attrs []string `yaml:"attrs"`
}

// themeDoc is the YAML shape of a theme document:
//
//	default:
//	  border: {fg: "#5a5a64"}
//	focused:
//	  border: {fg: "#ffb74d", attrs: [bold]}
type themeDoc map[string]map[string]styleDoc

// Load reads a YAML theme document and applies it over the receiver,
// replacing only the names the document defines.
func (t *Theme) Load(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeThemeParse, "read theme")
	}
	return t.Parse(raw)
}

// Parse applies a YAML theme document held in memory.
func (t *Theme) Parse(raw []byte) error {
	var doc themeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeThemeParse, "unmarshal theme")
	}

	for stateName, entries := range doc {
		state, err := parseState(stateName)
		if err != nil {
			return err
		}
		for name, sd := range entries {
			style, err := parseStyle(sd)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeThemeParse, "style "+name).
					WithContext("state", stateName)
			}
			t.Edit(state, name, style)
		}
	}
	return nil
}

func parseState(name string) (State, error) {
	switch name {
	case "default":
		return StateDefault, nil
	case "focused":
		return StateFocused, nil
	case "disabled":
		return StateDisabled, nil
	default:
		return 0, errors.Newf(errors.ErrCodeThemeParse, "unknown state %q", name)
	}
}

func parseStyle(sd styleDoc) (backend.Style, error) {
	style := backend.DefaultStyle()

	if sd.FG != "" {
		c, err := parseColor(sd.FG)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c)
	}
	if sd.BG != "" {
		c, err := parseColor(sd.BG)
		if err != nil {
			return style, err
		}
		style = style.Background(c)
	}

	for _, attr := range sd.Attrs {
		switch strings.ToLower(attr) {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "dim":
			style = style.Dim(true)
		case "underline":
			style = style.Underline(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		case "strikethrough":
			style = style.StrikeThrough(true)
		default:
			return style, fmt.Errorf("unknown attribute %q", attr)
		}
	}

	return style, nil
}

var namedColors = map[string]backend.Color{
	"default": backend.ColorDefault,
	"black":   backend.ColorBlack,
	"red":     backend.ColorRed,
	"green":   backend.ColorGreen,
	"yellow":  backend.ColorYellow,
	"blue":    backend.ColorBlue,
	"magenta": backend.ColorMagenta,
	"cyan":    backend.ColorCyan,
	"white":   backend.ColorWhite,
}

// parseColor accepts "#rrggbb" hex, a base color name, or a palette index.
func parseColor(s string) (backend.Color, error) {
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		if len(hex) != 6 {
			return 0, fmt.Errorf("bad hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad hex color %q", s)
		}
		return backend.ColorRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx <= 255 {
		return backend.Color(idx), nil
	}

	return 0, fmt.Errorf("unknown color %q", s)
}
