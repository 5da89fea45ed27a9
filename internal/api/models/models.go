// Package models holds request and response bodies of the HTTP API.
package models

import (
	"github.com/smazurov/vibelight/internal/color"
	"github.com/smazurov/vibelight/internal/node"
	"github.com/smazurov/vibelight/internal/version"
)

// HealthData reports liveness and whether a node configuration is active.
type HealthData struct {
	Status       string `json:"status" example:"ok" doc:"Health status"`
	Message      string `json:"message" example:"API is healthy" doc:"Health message"`
	ConfigLoaded bool   `json:"config_loaded" doc:"Whether a valid node configuration is active"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Body HealthData
}

// VersionResponse is the build information response.
type VersionResponse struct {
	Body version.Info
}

// NodeResponse carries the active node configuration with secrets masked.
type NodeResponse struct {
	Body node.Config
}

// TopicsData lists the derived MQTT identity and topics of the node.
type TopicsData struct {
	ClientID     string `json:"client_id" example:"vibelight_AAAABBBB" doc:"MQTT client id"`
	Username     string `json:"username" example:"vibelight_AAAABBBB" doc:"MQTT username"`
	StateTopic   string `json:"state_topic" example:"/vibelight/api/5/id/AAAABBBB/state/" doc:"Topic the node publishes state on"`
	CommandTopic string `json:"command_topic" example:"/vibelight/api/5/id/AAAABBBB/command/" doc:"Topic the node receives commands on"`
}

// TopicsResponse is the MQTT topics response.
type TopicsResponse struct {
	Body TopicsData
}

// NodeStatusData combines the config store state with the status LED.
type NodeStatusData struct {
	node.Status
	StatusLED string `json:"status_led,omitempty" example:"solid" doc:"Current status LED pattern"`
}

// NodeStatusResponse is the node status response.
type NodeStatusResponse struct {
	Body NodeStatusData
}

// EffectData describes one effect.
type EffectData struct {
	Token string `json:"token" example:"rainbowCycle" doc:"Wire token"`
	ID    int    `json:"id" example:"2" doc:"Numeric effect id"`
}

// EffectsData lists every effect.
type EffectsData struct {
	Effects []EffectData `json:"effects" doc:"Known effects in id order"`
}

// EffectsResponse is the effect list response.
type EffectsResponse struct {
	Body EffectsData
}

// EffectInput is a token to resolve.
type EffectInput struct {
	Token string `path:"token" example:"laserScanner" doc:"Effect token, case-sensitive"`
}

// EffectParseData is the resolution of a token.
type EffectParseData struct {
	Requested string `json:"requested" example:"disco" doc:"Token as requested"`
	Known     bool   `json:"known" doc:"Whether the token names an effect"`
	EffectData
}

// EffectParseResponse is the effect resolution response.
type EffectParseResponse struct {
	Body EffectParseData
}

// Channels are the four channel values of a color. Missing channels are 0.
type Channels struct {
	Red   uint8 `json:"red" required:"false" minimum:"0" maximum:"255" doc:"Red channel"`
	Green uint8 `json:"green" required:"false" minimum:"0" maximum:"255" doc:"Green channel"`
	Blue  uint8 `json:"blue" required:"false" minimum:"0" maximum:"255" doc:"Blue channel"`
	White uint8 `json:"white" required:"false" minimum:"0" maximum:"255" doc:"White channel"`
}

// ChannelsColor converts request channels to a color value.
func ChannelsColor(c Channels) color.Color {
	return color.New(c.Red, c.Green, c.Blue, c.White)
}

// ColorData is a color in every representation the API offers.
type ColorData struct {
	Channels
	Value  uint32 `json:"value" example:"2164228160" doc:"Packed 32-bit WRGB value"`
	Packed string `json:"packed" example:"0x80ff8040" doc:"Packed value as 0xWWRRGGBB"`
	HTML   string `json:"html" example:"#ff8040" doc:"RGB part as an HTML color"`
}

// NewColorData expands c into its API representation.
func NewColorData(c color.Color) ColorData {
	return ColorData{
		Channels: Channels{Red: c.Red, Green: c.Green, Blue: c.Blue, White: c.White},
		Value:    c.Uint32(),
		Packed:   c.String(),
		HTML:     c.Hex(),
	}
}

// ColorPackRequest packs four channels.
type ColorPackRequest struct {
	Body Channels
}

// ColorResponse carries one color.
type ColorResponse struct {
	Body ColorData
}

// ColorUnpackInput is a packed value: decimal, 0x hex, or #RRGGBB / #WWRRGGBB.
type ColorUnpackInput struct {
	Value string `path:"value" example:"0x80ff8040" doc:"Packed color value"`
}

// CrossfadeBody configures a crossfade preview.
type CrossfadeBody struct {
	From   Channels `json:"from" doc:"Start color"`
	To     Channels `json:"to" doc:"End color"`
	Steps  int      `json:"steps,omitempty" minimum:"2" maximum:"256" default:"16" doc:"Number of colors to return"`
	Output bool     `json:"output,omitempty" doc:"Apply the node's offsets, brightness cap and capability"`
}

// CrossfadeRequest is the crossfade preview request.
type CrossfadeRequest struct {
	Body CrossfadeBody
}

// CrossfadeData is the computed crossfade.
type CrossfadeData struct {
	Colors []ColorData `json:"colors" doc:"Colors from start to end"`
}

// CrossfadeResponse is the crossfade preview response.
type CrossfadeResponse struct {
	Body CrossfadeData
}

// LEDRequest controls a host LED.
type LEDRequest struct {
	Body struct {
		Role    string  `json:"role" example:"status" doc:"LED role (status or a board-specific name)"`
		Enabled bool    `json:"enabled" example:"true" doc:"Whether the LED should be on or off"`
		Pattern *string `json:"pattern,omitempty" example:"solid" doc:"Optional LED pattern (solid, blink, heartbeat)"`
	}
}

// LEDCapabilitiesData lists the LED roles and patterns of this host.
type LEDCapabilitiesData struct {
	AvailableRoles    []string `json:"available_roles" doc:"LED roles available on this host"`
	AvailablePatterns []string `json:"available_patterns" doc:"LED patterns available on this host"`
}

// LEDCapabilitiesResponse is the LED capabilities response.
type LEDCapabilitiesResponse struct {
	Body LEDCapabilitiesData
}
