package led

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const deviceTreeModelPath = "/proc/device-tree/model"

// boardLEDs maps a device tree model fragment to its LED roles.
var boardLEDs = []struct {
	model string
	leds  map[string]string
}{
	{"NanoPC-T6", map[string]string{StatusRole: "sys_led", "user": "usr_led"}},
	{"Orange Pi", map[string]string{StatusRole: "green_led", "blue": "blue_led"}},
	{"Raspberry Pi", map[string]string{StatusRole: "ACT"}},
}

// New creates a status LED controller. A non-empty name selects
// /sys/class/leds/<name> directly; otherwise the board is detected from the
// device tree. Falls back to a no-op controller when no LED is usable.
func New(name string, logger *slog.Logger) Controller {
	return newController(sysfsLEDPath, deviceTreeModelPath, name, logger)
}

func newController(root, modelPath, name string, logger *slog.Logger) Controller {
	if logger == nil {
		logger = slog.Default()
	}

	if name != "" {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			logger.Warn("Configured status LED not found, using no-op controller", "name", name, "error", err)
			return newNoop(logger)
		}
		logger.Info("Using configured status LED", "name", name)
		return newSysfs(root, map[string]string{StatusRole: name})
	}

	boardModel := detectBoard(modelPath)
	logger.Info("Detecting board for LED control", "board_model", boardModel)

	for _, board := range boardLEDs {
		if strings.Contains(boardModel, board.model) {
			logger.Info("Using sysfs LED controller", "board", board.model)
			return newSysfs(root, board.leds)
		}
	}

	logger.Info("No LED support detected, using no-op controller", "board_model", boardModel)
	return newNoop(logger)
}

// detectBoard reads the device tree model to identify the board.
func detectBoard(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "unknown"
	}
	// Device tree strings are NUL terminated.
	return strings.TrimRight(string(data), "\x00")
}
