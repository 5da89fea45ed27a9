package node

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override secrets from the config file.
const (
	EnvWiFiPassword = "VIBELIGHT_WIFI_PASSWORD"
	EnvMQTTPassword = "VIBELIGHT_MQTT_PASSWORD"
)

//go:embed sample.toml
var sample []byte

// Sample returns the commented sample configuration.
func Sample() []byte {
	return bytes.Clone(sample)
}

// Parse decodes a TOML document on top of the defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Derived values are recomputed from the decoded node id.
	cfg.MQTT.ClientID, cfg.MQTT.Username = "", ""
	cfg.MQTT.StateTopic, cfg.MQTT.CommandTopic = "", ""

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Config{}, fmt.Errorf("config line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("failed to parse node config: %w", err)
	}

	cfg.resolve()
	return cfg, nil
}

// Load reads and parses the config file, then applies secret overrides from
// the environment.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read node config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvWiFiPassword); v != "" {
		cfg.WiFi.Password = v
	}
	if v := os.Getenv(EnvMQTTPassword); v != "" {
		cfg.MQTT.Password = v
	}
	return cfg, nil
}

// LoadValid loads the config and rejects it if it does not validate.
func LoadValid(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid node config %s:\n%w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as TOML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal node config: %w", err)
	}
	return data, nil
}

// WriteFile atomically replaces path with data. The file holds credentials,
// so it is created owner-readable only.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}
	return nil
}
