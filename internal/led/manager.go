package led

import (
	"log/slog"
	"sync"

	"github.com/smazurov/vibelight/internal/events"
)

// patternOff is reported by Pattern while the status LED is switched off.
const patternOff = "off"

// Manager drives the status LED from node configuration events: solid while
// the active configuration is valid, blinking after a failed reload or
// before the first configuration was loaded.
type Manager struct {
	controller  Controller
	eventBus    *events.Bus
	unsubscribe []func()
	logger      *slog.Logger

	mu      sync.RWMutex
	pattern string
}

// NewManager creates a new status LED manager.
func NewManager(controller Controller, eventBus *events.Bus, logger *slog.Logger) *Manager {
	return &Manager{
		controller: controller,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Start shows the waiting pattern and begins listening for config events.
func (m *Manager) Start() {
	m.apply(PatternBlink)
	m.unsubscribe = append(m.unsubscribe,
		m.eventBus.Subscribe(func(e events.NodeConfigLoadedEvent) {
			m.logger.Debug("Node config loaded", "node_id", e.NodeID)
			m.apply(PatternSolid)
		}),
		m.eventBus.Subscribe(func(e events.NodeConfigFailedEvent) {
			m.logger.Debug("Node config failed", "path", e.Path, "error", e.Error)
			m.apply(PatternBlink)
		}),
	)
	m.logger.Info("LED manager started")
}

// Stop unsubscribes from events and switches the LED off.
func (m *Manager) Stop() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	if err := m.Set(StatusRole, false, ""); err != nil {
		m.logger.Debug("Failed to switch status LED off", "error", err)
	}
	m.logger.Info("LED manager stopped")
}

// Pattern returns the last pattern applied to the status LED.
func (m *Manager) Pattern() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pattern
}

// GetController returns the underlying LED controller for direct API access.
func (m *Manager) GetController() Controller {
	return m.controller
}

// Set drives an LED directly. An override of the status LED holds until the
// next config event re-applies the config pattern.
func (m *Manager) Set(role string, enabled bool, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.controller.Set(role, enabled, pattern); err != nil {
		return err
	}
	if role == StatusRole {
		switch {
		case !enabled:
			m.pattern = patternOff
		case pattern != "":
			m.pattern = pattern
		}
	}
	return nil
}

// apply writes pattern on every config event, even when it matches the last
// one, so overrides made outside the manager do not stick.
func (m *Manager) apply(pattern string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.controller.Set(StatusRole, true, pattern); err != nil {
		m.logger.Warn("Failed to set status LED", "pattern", pattern, "error", err)
		return
	}
	m.pattern = pattern
	m.logger.Debug("Status LED updated", "pattern", pattern)
}
