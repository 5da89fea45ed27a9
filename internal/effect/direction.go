package effect

// Direction is the travel direction of moving effects such as the laser scanner.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Right {
		return Left
	}
	return Right
}

// ParseDirection maps "left"/"right" to a direction, defaulting to Left.
func ParseDirection(s string) Direction {
	if s == "right" {
		return Right
	}
	return Left
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	*d = ParseDirection(string(text))
	return nil
}
