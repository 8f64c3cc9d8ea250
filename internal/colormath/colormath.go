// Package colormath provides pure transforms over 6-digit hex colors.
// Every function is total: malformed input degrades to NaN channels or
// black rather than an error, so callers validate with IsHex upstream.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds one channel per color component in the 0-255 range.
// Channels are float64 so intermediate math keeps fractional precision;
// malformed hex input surfaces as NaN channels.
type RGB struct {
	R, G, B float64
}

// IsHex reports whether the value looks like a hex color literal.
func IsHex(value string) bool {
	return strings.HasPrefix(value, "#")
}

// HexToRGB parses a #RRGGBB string. Non-hex characters yield NaN channels
// instead of an error.
func HexToRGB(hex string) RGB {
	clean := strings.TrimPrefix(hex, "#")
	return RGB{
		R: parseChannel(sub(clean, 0, 2)),
		G: parseChannel(sub(clean, 2, 4)),
		B: parseChannel(sub(clean, 4, 6)),
	}
}

func sub(s string, start, end int) string {
	if start > len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

func parseChannel(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return math.NaN()
	}
	return float64(v)
}

// RGBToHex clamps each channel to [0,255], rounds to the nearest integer and
// formats a lowercase #rrggbb string. NaN channels render as 00.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

func clamp(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Tint mixes the color toward white. factor 0 leaves it unchanged and
// factor 1 produces pure white; values outside [0,1] extrapolate.
func Tint(hex string, factor float64) string {
	c := HexToRGB(hex)
	return RGBToHex(
		c.R+(255-c.R)*factor,
		c.G+(255-c.G)*factor,
		c.B+(255-c.B)*factor,
	)
}

// Shade mixes the color toward black. factor 0 leaves it unchanged and
// factor 1 produces pure black.
func Shade(hex string, factor float64) string {
	c := HexToRGB(hex)
	return RGBToHex(c.R*(1-factor), c.G*(1-factor), c.B*(1-factor))
}

// DeriveInk produces a near-black body-text color biased toward the hue of
// the primary, so dark text still feels branded.
func DeriveInk(hex string) string {
	c := HexToRGB(hex)
	return RGBToHex(c.R*0.08, c.G*0.12+10, c.B*0.10+5)
}

// DeriveMuted produces a desaturated mid-tone for secondary text.
func DeriveMuted(hex string) string {
	c := HexToRGB(hex)
	return RGBToHex(c.R*0.30+80, c.G*0.35+85, c.B*0.30+80)
}
