package node

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPin is returned when a pin name cannot be resolved.
var ErrInvalidPin = errors.New("invalid pin")

// Pin is an ESP8266 GPIO number. PinDisabled turns a channel off.
type Pin int

// PinDisabled marks an unused channel.
const PinDisabled Pin = -1

// Board aliases printed on NodeMCU and Wemos D1 mini boards.
var boardPins = map[string]Pin{
	"D0": 16,
	"D1": 5,
	"D2": 4,
	"D3": 0,
	"D4": 2,
	"D5": 14,
	"D6": 12,
	"D7": 13,
	"D8": 15,
}

// LEDBuiltin is the onboard LED of the ESP-12 module (GPIO2, labelled D4).
const LEDBuiltin Pin = 2

const maxGPIO = 16

// ParsePin accepts a board alias ("D1"), "LED_BUILTIN", a GPIO number or -1.
func ParsePin(s string) (Pin, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PinDisabled, nil
	}

	upper := strings.ToUpper(s)
	if upper == "LED_BUILTIN" {
		return LEDBuiltin, nil
	}
	if p, ok := boardPins[upper]; ok {
		return p, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return PinDisabled, fmt.Errorf("%w: %q", ErrInvalidPin, s)
	}
	p := Pin(n)
	if !p.Disabled() && (n < 0 || n > maxGPIO) {
		return PinDisabled, fmt.Errorf("%w: GPIO%d out of range", ErrInvalidPin, n)
	}
	return p, nil
}

// Disabled reports whether the pin is switched off.
func (p Pin) Disabled() bool {
	return p == PinDisabled
}

// Alias returns the board label for the pin, or "" if it has none.
func (p Pin) Alias() string {
	for name, gpio := range boardPins {
		if gpio == p {
			return name
		}
	}
	return ""
}

// String returns the board label when there is one, otherwise the GPIO number.
func (p Pin) String() string {
	if p.Disabled() {
		return "-1"
	}
	if alias := p.Alias(); alias != "" {
		return alias
	}
	return strconv.Itoa(int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Pin) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pin) UnmarshalText(text []byte) error {
	parsed, err := ParsePin(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// StatusPin drives the firmware status LED. GPIO2 keeps its LED_BUILTIN name
// in text form instead of the D4 board label.
type StatusPin Pin

// String returns LED_BUILTIN for the onboard LED, otherwise the Pin form.
func (p StatusPin) String() string {
	if Pin(p) == LEDBuiltin {
		return "LED_BUILTIN"
	}
	return Pin(p).String()
}

// MarshalText implements encoding.TextMarshaler.
func (p StatusPin) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *StatusPin) UnmarshalText(text []byte) error {
	parsed, err := ParsePin(string(text))
	if err != nil {
		return err
	}
	*p = StatusPin(parsed)
	return nil
}
