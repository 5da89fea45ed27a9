// Package logging configures log/slog for the vibelight service.
//
// Every component asks for a named logger once and keeps it:
//
//	logger := logging.GetLogger("node")
//	logger.Info("Node configuration loaded", "node_id", cfg.Node.ID, "led_count", cfg.LED.Count)
//
// The modules used by the service are main, node, config, api, http, led and
// systemd. Each has its own level; a module without one follows the global
// level. [Initialize] may run after loggers were handed out, and
// [SetModuleLevel] changes a level at runtime. Both take effect on existing
// loggers.
//
// Records go to stdout (text or JSON) when it is attached to something, and
// to the systemd journal when journald is reachable. Journal entries carry
// SYSLOG_IDENTIFIER=vibelight, the caller's CODE_FILE/CODE_LINE/CODE_FUNC,
// and one upper-case field per attribute:
//
//	journalctl -t vibelight MODULE=node
//	journalctl -t vibelight NODE_ID=vibelight_AAAABBBB
//	journalctl -t vibelight OPERATION=crossfade-colors -p warning
//
// Levels are read from the [logging] table of vibelight.toml:
//
//	[logging]
//	level = "info"
//	format = "json"
//	http = "warn"
//
//	[logging.modules]
//	node = "debug"
package logging
