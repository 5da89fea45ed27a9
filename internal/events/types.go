package events

// Event type constants for kelindar/event.
const (
	TypeNodeConfigLoaded uint32 = iota + 1
	TypeNodeConfigFailed
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// NodeConfigLoadedEvent is published after the node configuration file was
// parsed and validated.
type NodeConfigLoadedEvent struct {
	NodeID        string `json:"node_id" example:"vibelight_livingroom" doc:"Node identifier"`
	Path          string `json:"path" example:"/etc/vibelight/node.toml" doc:"Configuration file"`
	LEDCount      int    `json:"led_count" example:"60" doc:"Configured pixel count"`
	MaxBrightness int    `json:"max_brightness" example:"80" doc:"Brightness cap in percent"`
	Timestamp     string `json:"timestamp" example:"2026-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for NodeConfigLoadedEvent.
func (e NodeConfigLoadedEvent) Type() uint32 { return TypeNodeConfigLoaded }

// NodeConfigFailedEvent is published when loading or validating the node
// configuration failed. The last good configuration stays active.
type NodeConfigFailedEvent struct {
	Path      string `json:"path" example:"/etc/vibelight/node.toml" doc:"Configuration file"`
	Error     string `json:"error" example:"led.max_brightness: must be between 0 and 100" doc:"Failure reason"`
	Timestamp string `json:"timestamp" example:"2026-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for NodeConfigFailedEvent.
func (e NodeConfigFailedEvent) Type() uint32 { return TypeNodeConfigFailed }
