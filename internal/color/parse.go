package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color definition cannot be parsed.
var ErrInvalidColorFormat = errors.New("invalid color format")

// defKind tags which textual syntax a color definition uses.
type defKind int

const (
	defHex defKind = iota
	defFunctional
)

// rgbaDef is the canonical form every color definition is reduced to before
// any conversion math runs.
type rgbaDef struct {
	r, g, b int
	a       float64
}

// Parse reads a color definition string.
//
// Accepted forms are "#RRGGBB", "#RRGGBBAA", "rgb(r,g,b)" and
// "rgba(r,g,b,a)". Whitespace around tokens is ignored. For "#RRGGBBAA"
// the alpha byte is scaled to 0-1; for "rgba()" alpha is read as a decimal.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	kind, err := classify(s)
	if err != nil {
		return Color{}, err
	}

	var def rgbaDef
	switch kind {
	case defHex:
		def, err = parseHex(s[1:])
	case defFunctional:
		def, err = parseFunctional(s)
	}
	if err != nil {
		return Color{}, err
	}

	return FromRGBA(def.r, def.g, def.b, def.a), nil
}

func classify(s string) (defKind, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		return defHex, nil
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return defFunctional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
}

func parseHex(hex string) (rgbaDef, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return rgbaDef{}, fmt.Errorf("%w: hex color must have 6 or 8 digits, got %d", ErrInvalidColorFormat, len(hex))
	}

	var bytes [4]int
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return rgbaDef{}, fmt.Errorf("%w: bad hex digits %q", ErrInvalidColorFormat, hex[2*i:2*i+2])
		}
		bytes[i] = int(v)
	}

	def := rgbaDef{r: bytes[0], g: bytes[1], b: bytes[2], a: 1}
	if len(hex) == 8 {
		def.a = float64(bytes[3]) / 255
	}
	return def, nil
}

func parseFunctional(s string) (rgbaDef, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return rgbaDef{}, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidColorFormat, s)
	}
	name := strings.ToLower(s[:open])
	parts := strings.Split(s[open+1:len(s)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return rgbaDef{}, fmt.Errorf("%w: %s() takes %d components, got %d", ErrInvalidColorFormat, name, want, len(parts))
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return rgbaDef{}, fmt.Errorf("%w: bad channel %q", ErrInvalidColorFormat, parts[i])
		}
		ch[i] = v
	}

	def := rgbaDef{r: ch[0], g: ch[1], b: ch[2], a: 1}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return rgbaDef{}, fmt.Errorf("%w: bad alpha %q", ErrInvalidColorFormat, parts[3])
		}
		def.a = a
	}
	return def, nil
}
