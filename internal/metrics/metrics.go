// Package metrics provides Prometheus metrics for node configuration reloads
// and the color conversion API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vibelight"

// Reload results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Conversion kinds served by the API.
const (
	ConversionPack      = "pack"
	ConversionUnpack    = "unpack"
	ConversionCrossfade = "crossfade"
)

// Registry holds every vibelight collector plus the Go runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	configReloads = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "config_reloads_total",
		Help:      "Node configuration loads by result",
	}, []string{"result"})

	configLastReload = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "config_last_success_timestamp_seconds",
		Help:      "Unix time of the last successful configuration load",
	})

	ledCount = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "led_count",
		Help:      "Configured pixel count",
	})

	maxBrightness = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "max_brightness_percent",
		Help:      "Configured brightness cap in percent",
	})

	conversions = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "color_conversions_total",
		Help:      "Color conversion requests by kind",
	}, []string{"kind"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	// Expose zero values before the first event.
	configReloads.WithLabelValues(ResultSuccess)
	configReloads.WithLabelValues(ResultFailure)
}

// RecordConfigLoaded counts a successful load and updates the node gauges.
func RecordConfigLoaded(leds, brightness int, at time.Time) {
	configReloads.WithLabelValues(ResultSuccess).Inc()
	configLastReload.Set(float64(at.Unix()))
	ledCount.Set(float64(leds))
	maxBrightness.Set(float64(brightness))
}

// RecordConfigFailed counts a failed load. Gauges keep the last good values.
func RecordConfigFailed() {
	configReloads.WithLabelValues(ResultFailure).Inc()
}

// RecordConversion counts one color conversion request.
func RecordConversion(kind string) {
	conversions.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
