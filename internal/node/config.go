// Package node holds the configuration of a single Vibelight node: identity,
// network credentials, MQTT endpoints and the LED hardware it drives.
package node

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smazurov/vibelight/internal/color"
)

// IDPrefix starts every generated node id.
const IDPrefix = "vibelight_"

// APIVersion is the version segment of the MQTT topic layout.
const APIVersion = 5

const (
	defaultMQTTPort           = 8883
	defaultMaxBrightness      = 80
	defaultTransitionDuration = 800000
	defaultLEDCount           = 60
	defaultCrossfadeDelay     = 2
	defaultCrossfadeSteps     = 256
	defaultConnectionRetries  = 10
	redactedSecret            = "********"
)

// Config is the full set of node settings.
type Config struct {
	Node       Identity   `toml:"node" json:"node"`
	WiFi       WiFi       `toml:"wifi" json:"wifi"`
	MQTT       MQTT       `toml:"mqtt" json:"mqtt"`
	LED        LED        `toml:"led" json:"led"`
	Pins       Pins       `toml:"pins" json:"pins"`
	Crossfade  Crossfade  `toml:"crossfade" json:"crossfade"`
	Connection Connection `toml:"connection" json:"connection"`
}

// Identity names the node.
type Identity struct {
	ID         string `toml:"id" json:"id" doc:"Unique node id, e.g. vibelight_AAAABBBB"`
	DebugLevel int    `toml:"debug_level" json:"debug_level" doc:"Firmware debug verbosity"`
}

// WiFi holds the access point credentials.
type WiFi struct {
	SSID     string `toml:"ssid" json:"ssid"`
	Password string `toml:"password" json:"password"`
}

// MQTT describes the broker connection and topic layout.
type MQTT struct {
	ClientID     string `toml:"client_id,omitempty" json:"client_id" doc:"Defaults to the node id"`
	Server       string `toml:"server" json:"server" doc:"Broker host name or IPv4 address"`
	Port         int    `toml:"port" json:"port"`
	Username     string `toml:"username,omitempty" json:"username" doc:"Defaults to the node id"`
	Password     string `toml:"password" json:"password"`
	Fingerprint  string `toml:"tls_fingerprint" json:"tls_fingerprint" doc:"SHA1 fingerprint of the server certificate"`
	StateTopic   string `toml:"state_topic,omitempty" json:"state_topic"`
	CommandTopic string `toml:"command_topic,omitempty" json:"command_topic"`
}

// LED describes the strip and its output limits.
type LED struct {
	Type       LEDType       `toml:"type" json:"type"`
	Capability Capability    `toml:"capability" json:"capability"`
	Offsets    color.Offsets `toml:"offsets" json:"offsets" doc:"Channel trims in 0..255"`
	// MaxBrightness caps output in percent (0..100).
	MaxBrightness int `toml:"max_brightness" json:"max_brightness"`
	// TransitionDuration is in microseconds.
	TransitionDuration int64 `toml:"transition_duration_us" json:"transition_duration_us"`
	Count              int   `toml:"count" json:"count" doc:"Pixel count for addressable strips"`
}

// Pins maps strip channels to GPIOs. Red, Green, Blue and White are only
// used by cathode strips; Signal only by addressable strips.
type Pins struct {
	Status StatusPin `toml:"status" json:"status"`
	Red    Pin       `toml:"red" json:"red"`
	Green  Pin       `toml:"green" json:"green"`
	Blue   Pin       `toml:"blue" json:"blue"`
	White  Pin       `toml:"white" json:"white"`
	Signal Pin       `toml:"signal" json:"signal"`
}

// Crossfade configures smooth transitions between colors.
type Crossfade struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// StepDelay is in milliseconds.
	StepDelay int `toml:"step_delay_ms" json:"step_delay_ms"`
	Steps     int `toml:"steps" json:"steps"`
}

// Connection bounds reconnect attempts.
type Connection struct {
	Retries int `toml:"retries" json:"retries"`
}

// Default returns the settings of the shipped sample configuration.
func Default() Config {
	cfg := Config{
		Node: Identity{
			ID:         IDPrefix + "AAAABBBB",
			DebugLevel: 1,
		},
		MQTT: MQTT{
			Port:        defaultMQTTPort,
			Fingerprint: strings.TrimSpace(strings.Repeat("XX ", FingerprintSize)),
		},
		LED: LED{
			Type:               WS2812B,
			Capability:         RGB,
			MaxBrightness:      defaultMaxBrightness,
			TransitionDuration: defaultTransitionDuration,
			Count:              defaultLEDCount,
		},
		Pins: Pins{
			Status: StatusPin(LEDBuiltin),
			Red:    boardPins["D1"],
			Green:  boardPins["D2"],
			Blue:   boardPins["D3"],
			White:  PinDisabled,
			Signal: boardPins["D1"],
		},
		Crossfade: Crossfade{
			StepDelay: defaultCrossfadeDelay,
			Steps:     defaultCrossfadeSteps,
		},
		Connection: Connection{
			Retries: defaultConnectionRetries,
		},
	}
	cfg.resolve()
	return cfg
}

// IDSuffix returns the node id without the "vibelight_" prefix.
func (c *Config) IDSuffix() string {
	return strings.TrimPrefix(c.Node.ID, IDPrefix)
}

// resolve fills settings that derive from the node id.
func (c *Config) resolve() {
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = c.Node.ID
	}
	if c.MQTT.Username == "" {
		c.MQTT.Username = c.Node.ID
	}
	if c.MQTT.StateTopic == "" {
		c.MQTT.StateTopic = c.topic("state")
	}
	if c.MQTT.CommandTopic == "" {
		c.MQTT.CommandTopic = c.topic("command")
	}
}

func (c *Config) topic(channel string) string {
	return fmt.Sprintf("/vibelight/api/%d/id/%s/%s/", APIVersion, c.IDSuffix(), channel)
}

// TransitionDuration returns the default transition as a duration.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.LED.TransitionDuration) * time.Microsecond
}

// CrossfadeStepDelay returns the delay between crossfade steps.
func (c *Config) CrossfadeStepDelay() time.Duration {
	return time.Duration(c.Crossfade.StepDelay) * time.Millisecond
}

// Offsets returns the configured channel trims.
func (c *Config) Offsets() color.Offsets {
	return c.LED.Offsets
}

// TLSFingerprint parses the broker certificate fingerprint.
func (c *Config) TLSFingerprint() (Fingerprint, error) {
	return ParseFingerprint(c.MQTT.Fingerprint)
}

// Output applies offsets, brightness cap and capability to a requested color,
// producing what the strip is actually driven with.
func (c *Config) Output(in color.Color) color.Color {
	return in.
		WithOffsets(c.LED.Offsets).
		Scale(c.LED.MaxBrightness).
		ForCapability(c.LED.Capability.HasWhite())
}

// Redacted returns a copy with secrets masked.
func (c *Config) Redacted() Config {
	out := *c
	if out.WiFi.Password != "" {
		out.WiFi.Password = redactedSecret
	}
	if out.MQTT.Password != "" {
		out.MQTT.Password = redactedSecret
	}
	return out
}

// FieldError is one validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the settings and returns every violation joined together.
func (c *Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Node.ID) == "" {
		add("node.id", "must not be empty")
	}

	if c.MQTT.Port < 1 || c.MQTT.Port > 65535 {
		add("mqtt.port", "%d is not a valid port", c.MQTT.Port)
	}
	if _, err := c.TLSFingerprint(); err != nil && !errors.Is(err, ErrFingerprintUnset) {
		add("mqtt.tls_fingerprint", "%v", err)
	}

	if c.LED.MaxBrightness < 0 || c.LED.MaxBrightness > 100 {
		add("led.max_brightness", "%d is outside 0..100", c.LED.MaxBrightness)
	}
	if c.LED.TransitionDuration < 0 {
		add("led.transition_duration_us", "must not be negative")
	}

	switch c.LED.Type {
	case WS2812B:
		if c.Pins.Signal.Disabled() {
			add("pins.signal", "required for ws2812b strips")
		}
		if c.LED.Count <= 0 {
			add("led.count", "must be positive for ws2812b strips")
		}
	case Cathode:
		if c.Pins.Red.Disabled() && c.Pins.Green.Disabled() && c.Pins.Blue.Disabled() && c.Pins.White.Disabled() {
			add("pins", "cathode strips need at least one channel pin")
		}
		if c.LED.Capability.HasWhite() && c.Pins.White.Disabled() {
			add("pins.white", "required for rgbw cathode strips")
		}
	}

	if c.Crossfade.Enabled && c.Crossfade.Steps <= 0 {
		add("crossfade.steps", "must be positive when crossfade is enabled")
	}
	if c.Crossfade.StepDelay < 0 {
		add("crossfade.step_delay_ms", "must not be negative")
	}
	if c.Connection.Retries < 0 {
		add("connection.retries", "must not be negative")
	}

	return errors.Join(errs...)
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
