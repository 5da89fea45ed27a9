package led

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const sysfsLEDPath = "/sys/class/leds"

// sysfs implements Controller using the Linux sysfs LED interface.
type sysfs struct {
	root string
	leds map[string]string // role -> sysfs name
}

func newSysfs(root string, leds map[string]string) *sysfs {
	return &sysfs{root: root, leds: leds}
}

// Set controls an LED's state and optional pattern.
func (s *sysfs) Set(role string, enabled bool, pattern string) error {
	sysfsName, ok := s.leds[role]
	if !ok {
		return fmt.Errorf("LED role %q not supported on this board", role)
	}

	ledPath := filepath.Join(s.root, sysfsName)
	if _, err := os.Stat(ledPath); os.IsNotExist(err) {
		return fmt.Errorf("LED %q not found at %s", role, ledPath)
	}

	if pattern != "" {
		var trigger string
		switch pattern {
		case PatternSolid:
			// Manual control; brightness below keeps it lit.
			trigger = "none"
		case PatternBlink:
			trigger = "timer"
		case PatternHeartbeat:
			trigger = "heartbeat"
		default:
			return fmt.Errorf("unknown LED pattern %q", pattern)
		}

		if err := os.WriteFile(filepath.Join(ledPath, "trigger"), []byte(trigger), 0o644); err != nil {
			return fmt.Errorf("failed to set LED trigger: %w", err)
		}
		// Kernel triggers manage brightness themselves.
		if pattern != PatternSolid && enabled {
			return nil
		}
	}

	brightness := "0"
	if enabled {
		brightness = "1"
	}
	if err := os.WriteFile(filepath.Join(ledPath, "brightness"), []byte(brightness), 0o644); err != nil {
		return fmt.Errorf("failed to set LED brightness: %w", err)
	}
	return nil
}

// Available returns the sorted roles supported by this controller.
func (s *sysfs) Available() []string {
	roles := make([]string, 0, len(s.leds))
	for role := range s.leds {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	return roles
}

// Patterns returns the patterns supported by this controller.
func (s *sysfs) Patterns() []string {
	return []string{PatternSolid, PatternBlink, PatternHeartbeat}
}
