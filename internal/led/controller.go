package led

// Role names used across boards. The manager drives StatusRole.
const (
	StatusRole = "status"
)

// Patterns understood by every controller that has LEDs.
const (
	PatternSolid     = "solid"
	PatternBlink     = "blink"
	PatternHeartbeat = "heartbeat"
)

// Controller abstracts host LED control across different boards.
// Implementations map role names to board-specific LEDs.
type Controller interface {
	// Set controls an LED's state and optional pattern
	// Parameters:
	//   role:    LED role (e.g., "status", "user", "green")
	//   enabled: whether the LED should be on or off
	//   pattern: optional pattern ("solid", "blink", "heartbeat");
	//            empty string means no pattern change
	Set(role string, enabled bool, pattern string) error

	// Available returns the roles supported by this controller
	Available() []string

	// Patterns returns the patterns supported by this controller
	Patterns() []string
}
