package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/smazurov/vibelight/cmd"
	"github.com/smazurov/vibelight/internal/api"
	"github.com/smazurov/vibelight/internal/config"
	"github.com/smazurov/vibelight/internal/events"
	"github.com/smazurov/vibelight/internal/led"
	"github.com/smazurov/vibelight/internal/logging"
	"github.com/smazurov/vibelight/internal/metrics"
	"github.com/smazurov/vibelight/internal/node"
	"github.com/smazurov/vibelight/internal/systemd"
	"github.com/smazurov/vibelight/internal/version"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"vibelight.toml"`

	// Server settings
	Port        string `help:"Port to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`
	CORSOrigins string `help:"Comma separated CORS origins, * allows any" default:"*" toml:"server.cors_origins" env:"SERVER_CORS_ORIGINS"`

	// Node settings
	NodeConfigFile      string `help:"Node configuration file" default:"node.toml" toml:"node.config_file" env:"NODE_CONFIG_FILE"`
	NodeWatchDebounceMs int    `help:"Delay before reloading a changed node file, in milliseconds" default:"1500" toml:"node.watch_debounce_ms" env:"NODE_WATCH_DEBOUNCE_MS"`

	// Auth settings; auth is off while either is empty
	AuthUsername string `help:"Basic auth username" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Features settings
	FeaturesStatusLED bool   `help:"Drive a host LED from the node config state" default:"false" toml:"features.status_led" env:"FEATURES_STATUS_LED"`
	StatusLEDName     string `help:"LED under /sys/class/leds; empty detects the board" default:"" toml:"status_led.name" env:"STATUS_LED_NAME"`
	MetricsEnabled    bool   `help:"Serve Prometheus metrics at /metrics" default:"true" toml:"metrics.enabled" env:"METRICS_ENABLED"`

	// Logging settings; empty module levels follow the global level
	LoggingLevel  string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingNode   string `help:"Node config logging level" default:"" toml:"logging.node" env:"LOGGING_NODE"`
	LoggingAPI    string `help:"API logging level" default:"" toml:"logging.api" env:"LOGGING_API"`
	LoggingHTTP   string `help:"HTTP request logging level" default:"" toml:"logging.http" env:"LOGGING_HTTP"`
	LoggingLED    string `help:"Status LED logging level" default:"" toml:"logging.led" env:"LOGGING_LED"`
}

func main() {
	var cli humacli.CLI

	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		var root *cobra.Command
		if cli != nil {
			root = cli.Root()
		}
		configErr := config.LoadConfig(opts, root)

		loggingConfig := config.LoadLoggingConfig(opts.Config)
		loggingConfig.Level = opts.LoggingLevel
		loggingConfig.Format = opts.LoggingFormat
		for module, level := range map[string]string{
			"node": opts.LoggingNode,
			"api":  opts.LoggingAPI,
			"http": opts.LoggingHTTP,
			"led":  opts.LoggingLED,
		} {
			if level != "" {
				loggingConfig.Modules[module] = level
			}
		}
		logging.Initialize(loggingConfig)

		logger := logging.GetLogger("main")
		if configErr != nil {
			logger.Warn("Failed to load config", "error", configErr)
		}

		var (
			srv        *api.Server
			watcher    *config.Watcher[node.Config]
			ledManager *led.Manager
			notifier   = systemd.NewNotifier(logging.GetLogger("systemd"))
			ctx, stop  = context.WithCancel(context.Background())
		)

		hooks.OnStart(func() {
			logger.Info("Starting vibelight", "version", version.String(), "node_config", opts.NodeConfigFile)

			eventBus := events.New()
			store := node.NewStore(opts.NodeConfigFile)

			if opts.FeaturesStatusLED {
				ledLogger := logging.GetLogger("led")
				ledManager = led.NewManager(led.New(opts.StatusLEDName, ledLogger), eventBus, ledLogger)
				ledManager.Start()
			}

			watcher = newNodeWatcher(opts, store, eventBus, notifier)
			if err := watcher.Load(); err != nil {
				logger.Warn("Starting without a valid node configuration", "error", err)
			}
			if err := watcher.Start(); err != nil {
				logger.Error("Failed to watch node configuration", "error", err)
			}

			apiOpts := &api.Options{
				AuthUsername: opts.AuthUsername,
				AuthPassword: opts.AuthPassword,
				AllowOrigins: splitList(opts.CORSOrigins),
				Store:        store,
				EventBus:     eventBus,
				LEDManager:   ledManager,
			}
			if opts.MetricsEnabled {
				apiOpts.PrometheusHandler = metrics.Handler()
			}
			srv = api.NewServer(apiOpts)

			go notifier.Watchdog(ctx)
			notifier.Ready()

			if err := srv.Start(opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", err)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down")
			notifier.Stopping()
			stop()

			if srv != nil {
				if err := srv.Stop(); err != nil {
					logger.Error("Error stopping HTTP server", "error", err)
				}
			}
			if watcher != nil {
				if err := watcher.Stop(); err != nil {
					logger.Warn("Error stopping config watcher", "error", err)
				}
			}
			if ledManager != nil {
				ledManager.Stop()
			}
		})
	})

	root := cli.Root()
	root.Use = "vibelight"
	root.Short = "Configuration service for Vibelight LED nodes"
	root.Version = version.String()

	root.AddCommand(
		cmd.CreateConfigCmd(),
		cmd.CreateColorCmd(),
		cmd.CreateEffectCmd(),
	)

	cli.Run()
}

// newNodeWatcher wires node file reloads into the store, metrics, event bus
// and systemd status. A failed reload keeps the previous configuration.
func newNodeWatcher(opts *Options, store *node.Store, bus *events.Bus, notifier *systemd.Notifier) *config.Watcher[node.Config] {
	logger := logging.GetLogger("node")

	onError := func(err error) {
		now := time.Now()
		store.Fail(err)
		metrics.RecordConfigFailed()
		logger.Error("Node configuration rejected", "path", opts.NodeConfigFile, "error", err)
		notifier.Status("node configuration invalid: " + firstLine(err.Error()))
		bus.Publish(events.NodeConfigFailedEvent{
			Path:      opts.NodeConfigFile,
			Error:     err.Error(),
			Timestamp: now.Format(time.RFC3339),
		})
	}

	w := config.NewConfigWatcher(
		opts.NodeConfigFile,
		node.LoadValid,
		logging.GetLogger("config"),
		config.WithDebounce[node.Config](time.Duration(opts.NodeWatchDebounceMs)*time.Millisecond),
		config.WithErrorHandler[node.Config](onError),
	)

	w.OnReload(func(cfg node.Config) {
		notifier.Reloading()
		defer notifier.Ready()

		now := time.Now()
		store.Set(cfg, now)
		metrics.RecordConfigLoaded(cfg.LED.Count, cfg.LED.MaxBrightness, now)
		logger.Info("Node configuration loaded",
			"node_id", cfg.Node.ID,
			"led_type", cfg.LED.Type.String(),
			"led_count", cfg.LED.Count,
			"state_topic", cfg.MQTT.StateTopic)
		notifier.Status(fmt.Sprintf("node %s: %d %s LEDs", cfg.Node.ID, cfg.LED.Count, cfg.LED.Type))
		bus.Publish(events.NodeConfigLoadedEvent{
			NodeID:        cfg.Node.ID,
			Path:          opts.NodeConfigFile,
			LEDCount:      cfg.LED.Count,
			MaxBrightness: cfg.LED.MaxBrightness,
			Timestamp:     now.Format(time.RFC3339),
		})
	})

	return w
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
