package api

import (
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/go-cmp/cmp"

	"github.com/smazurov/vibelight/internal/api/models"
	"github.com/smazurov/vibelight/internal/node"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestAPI registers the color and effect routes on a humatest API.
func newTestAPI(t *testing.T, store *node.Store) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if store == nil {
		store = node.NewStore("")
	}
	s := &Server{api: api, options: &Options{}, store: store, logger: testLogger()}
	s.registerColorRoutes()
	s.registerEffectRoutes()
	return api
}

func TestPackColor(t *testing.T) {
	api := newTestAPI(t, nil)

	resp := api.Post("/api/colors/pack", map[string]any{
		"red": 255, "green": 128, "blue": 64, "white": 128,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", resp.Code, resp.Body)
	}

	want := models.ColorData{
		Channels: models.Channels{Red: 255, Green: 128, Blue: 64, White: 128},
		Value:    0x80ff8040,
		Packed:   "0x80ff8040",
		HTML:     "#ff8040",
	}
	if diff := cmp.Diff(want, decode[models.ColorData](t, resp)); diff != "" {
		t.Errorf("pack mismatch (-want +got):\n%s", diff)
	}
	// ColorData must stay a plain struct for huma to link its schema.
	if body := decode[map[string]any](t, resp); body["$schema"] == nil {
		t.Errorf("response has no $schema link: %v", body)
	}
}

func TestPackColorRejectsOutOfRange(t *testing.T) {
	api := newTestAPI(t, nil)

	resp := api.Post("/api/colors/pack", map[string]any{"red": 256})
	if resp.Code < 400 || resp.Code >= 500 {
		t.Errorf("status = %d, want a client error", resp.Code)
	}
}

func TestUnpackColor(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		value string
		want  models.Channels
	}{
		{"0x80ff8040", models.Channels{Red: 255, Green: 128, Blue: 64, White: 128}},
		{"2164228160", models.Channels{Red: 255, Green: 128, Blue: 64, White: 128}},
		{"%23ff8040", models.Channels{Red: 255, Green: 128, Blue: 64}},
		{"%2380ff8040", models.Channels{Red: 255, Green: 128, Blue: 64, White: 128}},
		{"0", models.Channels{}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			resp := api.Get("/api/colors/" + tt.value)
			if resp.Code != http.StatusOK {
				t.Fatalf("status = %d body %s", resp.Code, resp.Body)
			}
			if diff := cmp.Diff(tt.want, decode[models.ColorData](t, resp).Channels); diff != "" {
				t.Errorf("channels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnpackColorInvalid(t *testing.T) {
	api := newTestAPI(t, nil)

	for _, value := range []string{"purple", "0x1ffffffff", "%23abc"} {
		if resp := api.Get("/api/colors/" + value); resp.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", value, resp.Code)
		}
	}
}

func TestCrossfadePreview(t *testing.T) {
	api := newTestAPI(t, nil)

	resp := api.Post("/api/colors/crossfade", map[string]any{
		"from":  map[string]any{"red": 0},
		"to":    map[string]any{"red": 255, "white": 255},
		"steps": 3,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", resp.Code, resp.Body)
	}

	got := decode[models.CrossfadeData](t, resp).Colors
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Red != 0 || got[2].Red != 255 || got[2].White != 255 {
		t.Errorf("endpoints = %+v .. %+v", got[0], got[2])
	}
	if got[1].Red != 127 {
		t.Errorf("midpoint red = %d, want 127", got[1].Red)
	}
}

func TestCrossfadeDefaultSteps(t *testing.T) {
	api := newTestAPI(t, nil)

	resp := api.Post("/api/colors/crossfade", map[string]any{
		"from": map[string]any{},
		"to":   map[string]any{"blue": 200},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", resp.Code, resp.Body)
	}
	if got := len(decode[models.CrossfadeData](t, resp).Colors); got != 16 {
		t.Errorf("len = %d, want default 16", got)
	}
}

func TestCrossfadeOutput(t *testing.T) {
	body := map[string]any{
		"from":   map[string]any{},
		"to":     map[string]any{"red": 210, "green": 100, "white": 200},
		"steps":  2,
		"output": true,
	}

	t.Run("node config", func(t *testing.T) {
		cfg := node.Default()
		cfg.LED.MaxBrightness = 50
		cfg.LED.Offsets.Red = 10
		store := node.NewStore("")
		store.Set(cfg, time.Now())

		resp := newTestAPI(t, store).Post("/api/colors/crossfade", body)
		if resp.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", resp.Code, resp.Body)
		}
		got := decode[models.CrossfadeData](t, resp).Colors
		want := models.Channels{Red: 100, Green: 50}
		if diff := cmp.Diff(want, got[len(got)-1].Channels); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("defaults before load", func(t *testing.T) {
		resp := newTestAPI(t, nil).Post("/api/colors/crossfade", body)
		if resp.Code != http.StatusOK {
			t.Fatalf("status = %d body %s", resp.Code, resp.Body)
		}
		got := decode[models.CrossfadeData](t, resp).Colors
		want := models.Channels{Red: 168, Green: 80}
		if diff := cmp.Diff(want, got[len(got)-1].Channels); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCrossfadeRejectsTooManySteps(t *testing.T) {
	resp := newTestAPI(t, nil).Post("/api/colors/crossfade", map[string]any{
		"from": map[string]any{}, "to": map[string]any{}, "steps": 1000,
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.Code)
	}
}
