package node

import "fmt"

// LEDType selects how the strip is driven.
type LEDType int

const (
	// Cathode strips are driven by one PWM pin per channel.
	Cathode LEDType = iota
	// WS2812B strips are individually addressable over a single signal pin.
	WS2812B
)

// String returns the config token.
func (t LEDType) String() string {
	switch t {
	case Cathode:
		return "cathode"
	case WS2812B:
		return "ws2812b"
	default:
		return fmt.Sprintf("LEDType(%d)", int(t))
	}
}

// ParseLEDType parses "cathode" or "ws2812b" (case-insensitive).
func ParseLEDType(s string) (LEDType, error) {
	switch lower(s) {
	case "cathode":
		return Cathode, nil
	case "ws2812b":
		return WS2812B, nil
	default:
		return Cathode, fmt.Errorf("unknown LED type %q (want cathode or ws2812b)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t LEDType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *LEDType) UnmarshalText(text []byte) error {
	parsed, err := ParseLEDType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Capability says which color channels the strip has.
type Capability int

const (
	RGB Capability = iota
	RGBW
)

// String returns the config token.
func (c Capability) String() string {
	switch c {
	case RGB:
		return "rgb"
	case RGBW:
		return "rgbw"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

// HasWhite reports whether the strip has a dedicated white channel.
func (c Capability) HasWhite() bool {
	return c == RGBW
}

// ParseCapability parses "rgb" or "rgbw" (case-insensitive).
func ParseCapability(s string) (Capability, error) {
	switch lower(s) {
	case "rgb":
		return RGB, nil
	case "rgbw":
		return RGBW, nil
	default:
		return RGB, fmt.Errorf("unknown LED capability %q (want rgb or rgbw)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Capability) UnmarshalText(text []byte) error {
	parsed, err := ParseCapability(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
