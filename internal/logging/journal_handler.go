package logging

import (
	"context"
	"log/slog"
	"maps"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/journal"
)

// SyslogIdentifier tags every journal entry, e.g. `journalctl -t vibelight`.
const SyslogIdentifier = "vibelight"

// reservedFields are written by the handler itself. Attributes that map to
// one of them are stored as ATTR_<NAME> instead.
var reservedFields = map[string]bool{
	"MESSAGE":           true,
	"PRIORITY":          true,
	"SYSLOG_IDENTIFIER": true,
	"CODE_FILE":         true,
	"CODE_LINE":         true,
	"CODE_FUNC":         true,
}

// JournalHandler is a slog.Handler that writes structured entries to the
// systemd journal. Attribute keys become upper-case journal fields, so
// `logger.Info("loaded", "node_id", id)` can be found with
// `journalctl -t vibelight NODE_ID=<id>`.
type JournalHandler struct {
	level  slog.Leveler
	fields map[string]string // attributes added with WithAttrs
	prefix string            // open groups as "GROUP_"
	send   func(message string, priority journal.Priority, fields map[string]string) error
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(level slog.Leveler) *JournalHandler {
	return &JournalHandler{
		level:  level,
		fields: map[string]string{},
		send:   journal.Send,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle sends the record to the journal with its source location.
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]string, len(h.fields)+r.NumAttrs()+4)
	maps.Copy(fields, h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		addAttrToFields(fields, h.prefix, attr)
		return true
	})

	fields["SYSLOG_IDENTIFIER"] = SyslogIdentifier
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fields["CODE_FILE"] = frame.File
		fields["CODE_LINE"] = strconv.Itoa(frame.Line)
		fields["CODE_FUNC"] = frame.Function
	}

	return h.send(r.Message, journalPriority(r.Level), fields)
}

// WithAttrs returns a handler that adds attrs under the current groups.
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	fields := maps.Clone(h.fields)
	for _, attr := range attrs {
		addAttrToFields(fields, h.prefix, attr)
	}
	next := *h
	next.fields = fields
	return &next
}

// WithGroup returns a handler that prefixes later attributes with name.
func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + journalKey(name) + "_"
	return &next
}

func journalPriority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// addAttrToFields flattens attr into fields. Groups join their keys with "_".
func addAttrToFields(fields map[string]string, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += journalKey(attr.Key) + "_"
		}
		for _, a := range attr.Value.Group() {
			addAttrToFields(fields, prefix, a)
		}
		return
	}

	key := prefix + journalKey(attr.Key)
	if reservedFields[key] {
		key = "ATTR_" + key
	}
	fields[key] = journalValue(attr.Value)
}

// journalKey converts an attribute key to a valid journal field name:
// upper-case letters, digits and underscores, starting with a letter.
func journalKey(key string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)
	if mapped = strings.TrimLeft(mapped, "_"); mapped == "" {
		return "ATTR"
	}
	if mapped[0] >= '0' && mapped[0] <= '9' {
		return "ATTR_" + mapped
	}
	return mapped
}

func journalValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	default:
		return v.String()
	}
}

// IsJournalAvailable checks if systemd journal is available.
func IsJournalAvailable() bool {
	return journal.Enabled()
}
