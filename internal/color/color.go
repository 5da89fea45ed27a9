package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// Channel bit offsets inside a packed WRGB word.
const (
	whiteShift = 24
	redShift   = 16
	greenShift = 8
	blueShift  = 0
)

// Color is a single RGBW value as driven onto a strip.
type Color struct {
	Red   uint8 `json:"red" toml:"red" doc:"Red channel (0-255)"`
	Green uint8 `json:"green" toml:"green" doc:"Green channel (0-255)"`
	Blue  uint8 `json:"blue" toml:"blue" doc:"Blue channel (0-255)"`
	White uint8 `json:"white" toml:"white" doc:"White channel (0-255)"`
}

// Offsets are per-channel trims subtracted from a color to even out
// inconsistencies between strips.
type Offsets struct {
	Red   uint8 `json:"red" toml:"red"`
	Green uint8 `json:"green" toml:"green"`
	Blue  uint8 `json:"blue" toml:"blue"`
	White uint8 `json:"white" toml:"white"`
}

// Black is the all-off color.
var Black = Color{}

// New builds a color from its four channels.
func New(red, green, blue, white uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, White: white}
}

// Uint32 packs the color into a 32-bit WRGB word: white in the high byte,
// blue in the low byte.
func (c Color) Uint32() uint32 {
	return uint32(c.White)<<whiteShift |
		uint32(c.Red)<<redShift |
		uint32(c.Green)<<greenShift |
		uint32(c.Blue)<<blueShift
}

// FromUint32 unpacks a 32-bit WRGB word.
func FromUint32(v uint32) Color {
	return Color{
		Red:   uint8(v >> redShift),
		Green: uint8(v >> greenShift),
		Blue:  uint8(v >> blueShift),
		White: uint8(v >> whiteShift),
	}
}

// String renders the packed word, e.g. "0x00ff8000".
func (c Color) String() string {
	return fmt.Sprintf("0x%08x", c.Uint32())
}

// Hex renders the RGB part as "#rrggbb". The white channel is not included.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}.Hex()
}

// ParseHex parses "#rrggbb" (white off) or "#wwrrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var white uint8
	switch len(s) {
	case 7:
	case 9:
		w, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		white = uint8(w)
		s = "#" + s[3:]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	rgb, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := rgb.RGB255()
	return Color{Red: r, Green: g, Blue: b, White: white}, nil
}

// ParseUint32 parses a packed word written in decimal or 0x-prefixed hex.
func ParseUint32(s string) (Color, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse packed color %q: %w", s, err)
	}
	return FromUint32(uint32(v)), nil
}

// WithOffsets subtracts the channel trims, saturating at zero.
func (c Color) WithOffsets(o Offsets) Color {
	return Color{
		Red:   subSat(c.Red, o.Red),
		Green: subSat(c.Green, o.Green),
		Blue:  subSat(c.Blue, o.Blue),
		White: subSat(c.White, o.White),
	}
}

// Scale dims every channel to percent of its value. Percent is clamped to 0..100.
func (c Color) Scale(percent int) Color {
	if percent >= 100 {
		return c
	}
	if percent <= 0 {
		return Black
	}
	return Color{
		Red:   scale(c.Red, percent),
		Green: scale(c.Green, percent),
		Blue:  scale(c.Blue, percent),
		White: scale(c.White, percent),
	}
}

// ForCapability drops the white channel when the strip has none.
func (c Color) ForCapability(rgbw bool) Color {
	if !rgbw {
		c.White = 0
	}
	return c
}

// IsBlack reports whether every channel is off.
func (c Color) IsBlack() bool {
	return c == Black
}

func subSat(v, d uint8) uint8 {
	if d >= v {
		return 0
	}
	return v - d
}

func scale(v uint8, percent int) uint8 {
	return uint8(int(v) * percent / 100)
}
