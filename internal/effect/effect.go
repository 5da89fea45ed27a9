// Package effect names the lighting animations a Vibelight node understands
// and maps them to the tokens used on the wire and in config files.
package effect

// Effect is a lighting animation mode.
type Effect int

const (
	None Effect = iota
	Rainbow
	RainbowCycle
	LaserScanner
)

// Wire tokens. These are part of the node API and must not change.
const (
	TokenNone         = "none"
	TokenRainbow      = "rainbow"
	TokenRainbowCycle = "rainbowCycle"
	TokenLaserScanner = "laserScanner"
)

var tokens = [...]string{
	None:         TokenNone,
	Rainbow:      TokenRainbow,
	RainbowCycle: TokenRainbowCycle,
	LaserScanner: TokenLaserScanner,
}

// All returns every defined effect in declaration order.
func All() []Effect {
	return []Effect{None, Rainbow, RainbowCycle, LaserScanner}
}

// String returns the wire token. Values outside the enum render as "none".
func (e Effect) String() string {
	if !e.Valid() {
		return TokenNone
	}
	return tokens[e]
}

// Valid reports whether e is one of the defined effects.
func (e Effect) Valid() bool {
	return e >= None && int(e) < len(tokens)
}

// Parse maps a wire token to its effect. Matching is exact and
// case-sensitive; any unrecognized token yields None.
func Parse(token string) Effect {
	switch token {
	case TokenRainbow:
		return Rainbow
	case TokenRainbowCycle:
		return RainbowCycle
	case TokenLaserScanner:
		return LaserScanner
	default:
		return None
	}
}

// Known reports whether token names a defined effect. Parse never fails, so
// callers that want to warn about typos check this first.
func Known(token string) bool {
	return token == TokenNone || Parse(token) != None
}

// Tokens returns the wire tokens of every defined effect.
func Tokens() []string {
	out := make([]string, 0, len(tokens))
	for _, e := range All() {
		out = append(out, e.String())
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same fallback
// as Parse. It never returns an error.
func (e *Effect) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}
