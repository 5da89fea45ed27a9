package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/google/go-cmp/cmp"
)

func resetState() {
	mutex.Lock()
	moduleLoggers = make(map[string]*slog.Logger)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	globalConfig = Config{}
	isInitialized = false
	mutex.Unlock()
}

func TestModuleLevelOverride(t *testing.T) {
	resetState()

	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"node": "debug",
			"api":  "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"node", true, true, true},
		{"api", false, false, true},
		{"other", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()
			ctx := context.Background()

			if got := handler.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("Debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := handler.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("Info enabled = %v, want %v", got, tt.wantInfo)
			}
			if got := handler.Enabled(ctx, slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("Warn enabled = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestOutputWriterAndModuleAttr(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	Initialize(Config{Level: "debug", Format: "text", Output: &buf})

	GetLogger("node").Debug("config loaded", "leds", 60)

	out := buf.String()
	for _, want := range []string{"config loaded", "module=node", "leds=60", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	Initialize(Config{Level: "info", Format: "json", Output: &buf})

	GetLogger("api").Info("request")

	if !strings.Contains(buf.String(), `"module":"api"`) {
		t.Errorf("json output missing module: %s", buf.String())
	}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetState()

	before := GetLogger("led")
	if before.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger created before Initialize should default to info")
	}

	Initialize(Config{
		Level:   "info",
		Format:  "text",
		Modules: map[string]string{"led": "debug"},
	})

	after := GetLogger("led")
	if !after.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger should have debug enabled after Initialize")
	}
	// The old handler shares the LevelVar, so components holding it follow too.
	if !before.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger captured before Initialize should follow the new level")
	}
}

func TestSetModuleLevel(t *testing.T) {
	resetState()
	Initialize(Config{Level: "info"})

	logger := GetLogger("watcher")
	if logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should start disabled")
	}

	if !SetModuleLevel("watcher", "debug") {
		t.Fatal("SetModuleLevel rejected a valid level")
	}
	if !logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be enabled after SetModuleLevel")
	}

	if SetModuleLevel("watcher", "loud") {
		t.Error("SetModuleLevel accepted an invalid level")
	}
}

func TestFanoutRespectsHandlerLevels(t *testing.T) {
	var buf bytes.Buffer

	debugHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(fanout{debugHandler, infoHandler}).With("module", "test")
	logger.Debug("debug only message")

	if count := strings.Count(buf.String(), "debug only message"); count != 1 {
		t.Errorf("expected 1 debug message, got %d. Output: %s", count, buf.String())
	}

	logger.Info("both")
	if count := strings.Count(buf.String(), "both"); count != 2 {
		t.Errorf("expected info on both handlers, got %d", count)
	}
}

func TestParseLevelValues(t *testing.T) {
	tests := []struct {
		input  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"invalid", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseLevel(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseLevel(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJournalAttrFields(t *testing.T) {
	fields := make(map[string]string)
	addAttrToFields(fields, "", slog.Int("led_count", 60))
	addAttrToFields(fields, "", slog.Group("mqtt", slog.String("server", "broker")))
	addAttrToFields(fields, "", slog.String("message", "shadowed"))
	addAttrToFields(fields, "", slog.String("user-agent", "curl"))
	addAttrToFields(fields, "", slog.Float64("ratio", 0.5))
	addAttrToFields(fields, "", slog.Bool("2g", true))

	want := map[string]string{
		"LED_COUNT":    "60",
		"MQTT_SERVER":  "broker",
		"ATTR_MESSAGE": "shadowed",
		"USER_AGENT":   "curl",
		"RATIO":        "0.5",
		"ATTR_2G":      "true",
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

type sentEntry struct {
	message  string
	priority journal.Priority
	fields   map[string]string
}

func newCapturingJournal(level slog.Leveler) (*JournalHandler, *[]sentEntry) {
	var sent []sentEntry
	h := NewJournalHandler(level)
	h.send = func(message string, priority journal.Priority, fields map[string]string) error {
		sent = append(sent, sentEntry{message, priority, fields})
		return nil
	}
	return h, &sent
}

func TestJournalHandlerEntry(t *testing.T) {
	h, sent := newCapturingJournal(slog.LevelInfo)

	logger := slog.New(h).With("module", "node").WithGroup("cfg").With("path", "/etc/vibelight/node.toml")
	logger.Warn("Node configuration rejected", "node_id", "vibelight_desk")
	logger.Debug("dropped")

	if len(*sent) != 1 {
		t.Fatalf("sent %d entries, want 1", len(*sent))
	}
	e := (*sent)[0]
	if e.message != "Node configuration rejected" || e.priority != journal.PriWarning {
		t.Errorf("entry = %q priority %d", e.message, e.priority)
	}
	for key, want := range map[string]string{
		"SYSLOG_IDENTIFIER": "vibelight",
		"MODULE":            "node",
		"CFG_PATH":          "/etc/vibelight/node.toml",
		"CFG_NODE_ID":       "vibelight_desk",
	} {
		if got := e.fields[key]; got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if !strings.HasSuffix(e.fields["CODE_FILE"], "logger_test.go") || e.fields["CODE_LINE"] == "" {
		t.Errorf("source fields = %q:%q", e.fields["CODE_FILE"], e.fields["CODE_LINE"])
	}
}

func TestJournalHandlerAttrsDoNotLeakBetweenLoggers(t *testing.T) {
	h, sent := newCapturingJournal(slog.LevelInfo)

	base := slog.New(h)
	base.With("node_id", "a").Info("first")
	base.Info("second")

	if len(*sent) != 2 {
		t.Fatalf("sent %d entries, want 2", len(*sent))
	}
	if _, ok := (*sent)[1].fields["NODE_ID"]; ok {
		t.Error("attribute from a derived logger leaked into the base logger")
	}
}

func TestJournalPriority(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  journal.Priority
	}{
		{slog.LevelDebug, journal.PriDebug},
		{slog.LevelInfo, journal.PriInfo},
		{slog.LevelWarn, journal.PriWarning},
		{slog.LevelError, journal.PriErr},
		{slog.LevelError + 4, journal.PriErr},
	}
	for _, tt := range tests {
		if got := journalPriority(tt.level); got != tt.want {
			t.Errorf("journalPriority(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
