package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const achromaticEpsilon = 1e-6

type rgb struct{ r, g, b float64 }

// IsHex reports whether s is a #RRGGBB color.
func IsHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

func hexToRGB(hex string) rgb {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return rgb{}
	}
	return rgb{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}
}

func rgbToHex(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.r), clampByte(c.g), clampByte(c.b))
}

// HexToHSL converts a hex color (#RRGGBB) to HSL (h: 0-360, s: 0-1, l: 0-1).
func HexToHSL(hex string) (h, s, l float64) {
	c := hexToRGB(hex)
	r, g, b := c.r/255, c.g/255, c.b/255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l = (hi + lo) / 2

	if math.Abs(hi-lo) < achromaticEpsilon {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// HSLToHex converts HSL (h: 0-360, s: 0-1, l: 0-1) to a hex color string.
func HSLToHex(h, s, l float64) string {
	if s == 0 {
		v := l * 255
		return rgbToHex(rgb{v, v, v})
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hNorm := h / 360
	return rgbToHex(rgb{
		r: hueToRGB(p, q, hNorm+1.0/3.0) * 255,
		g: hueToRGB(p, q, hNorm) * 255,
		b: hueToRGB(p, q, hNorm-1.0/3.0) * 255,
	})
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// Luminance returns relative luminance (0-1) using sRGB formula.
func Luminance(hex string) float64 {
	c := hexToRGB(hex)
	return 0.2126*linearize(c.r/255) + 0.7152*linearize(c.g/255) + 0.0722*linearize(c.b/255)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Blend mixes two hex colors: result = (1-t)*c1 + t*c2. t is clamped to [0,1].
func Blend(c1, c2 string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	a, b := hexToRGB(c1), hexToRGB(c2)
	return rgbToHex(rgb{
		r: a.r*(1-t) + b.r*t,
		g: a.g*(1-t) + b.g*t,
		b: a.b*(1-t) + b.b*t,
	})
}

// Lighten increases HSL lightness by pct (0-1).
func Lighten(hex string, pct float64) string {
	h, s, l := HexToHSL(hex)
	return HSLToHex(h, s, math.Min(1, l+pct))
}

// Darken decreases HSL lightness by pct (0-1).
func Darken(hex string, pct float64) string {
	h, s, l := HexToHSL(hex)
	return HSLToHex(h, s, math.Max(0, l-pct))
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between two colors (1 to 21).
func ContrastRatio(fg, bg string) float64 {
	l1, l2 := Luminance(fg), Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// EnsureContrast adjusts fg until the contrast ratio against bg meets minRatio.
// Blends toward whichever pole (white or black) reaches the target with the
// smallest shift. Returns fg unchanged if it already passes.
func EnsureContrast(fg, bg string, minRatio float64) string {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}

	best := ""
	bestBlend := 2.0
	fallback, fallbackRatio := fg, ContrastRatio(fg, bg)
	for _, target := range []string{"#ffffff", "#000000"} {
		ratio := ContrastRatio(target, bg)
		if ratio > fallbackRatio {
			fallback, fallbackRatio = target, ratio
		}
		if ratio < minRatio {
			continue
		}
		lo, hi := 0.0, 1.0
		for range 16 {
			mid := (lo + hi) / 2
			if ContrastRatio(Blend(fg, target, mid), bg) >= minRatio {
				hi = mid
			} else {
				lo = mid
			}
		}
		if hi < bestBlend {
			best, bestBlend = target, hi
		}
	}

	if best != "" {
		return Blend(fg, best, bestBlend)
	}
	return fallback
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
