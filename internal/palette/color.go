package palette

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Accepted color grammars. Precedence is hex, then rgb, then rgba; the
// leading token keeps them mutually exclusive today, but the order is part
// of the contract in case an overlapping format is ever added.
var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(0|1|0\.\d+)\s*\)$`)
)

// IsValidColor reports whether input is an acceptable color in one of the
// three supported textual forms: #rgb / #rrggbb hex, rgb(r, g, b), or
// rgba(r, g, b, a). Surrounding whitespace is ignored. Channel values must
// lie in [0, 255] and alpha in [0, 1]; the syntax alone admits 3-digit
// channels up to 999, so the range check is a separate step.
func IsValidColor(input string) bool {
	s := strings.TrimSpace(input)
	if s == "" {
		return false
	}

	if hexPattern.MatchString(s) {
		return true
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return channelsInRange(m[1], m[2], m[3])
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		return channelsInRange(m[1], m[2], m[3]) && alphaInRange(m[4])
	}

	return false
}

func channelsInRange(channels ...string) bool {
	for _, c := range channels {
		n, err := strconv.Atoi(c)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func alphaInRange(alpha string) bool {
	a, err := strconv.ParseFloat(alpha, 64)
	return err == nil && a >= 0 && a <= 1
}

// ParseColor converts a valid color string into a colorful.Color. The
// second return is false when the input does not satisfy IsValidColor.
// Alpha is discarded; swatch rendering works on the opaque channels.
func ParseColor(input string) (colorful.Color, bool) {
	s := strings.TrimSpace(input)

	if hexPattern.MatchString(s) {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	var m []string
	if m = rgbPattern.FindStringSubmatch(s); m == nil {
		m = rgbaPattern.FindStringSubmatch(s)
	}
	if m == nil || !channelsInRange(m[1], m[2], m[3]) {
		return colorful.Color{}, false
	}
	if len(m) == 5 && !alphaInRange(m[4]) {
		return colorful.Color{}, false
	}

	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

// HexString normalizes any valid color into #rrggbb form. Terminal
// backends only understand hex, so the TUI renders swatches through this.
func HexString(input string) (string, bool) {
	c, ok := ParseColor(input)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}
