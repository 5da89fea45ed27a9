package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/vibelight/internal/api/models"
	"github.com/smazurov/vibelight/internal/color"
	"github.com/smazurov/vibelight/internal/metrics"
	"github.com/smazurov/vibelight/internal/node"
)

func (s *Server) registerColorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "pack-color",
		Method:      http.MethodPost,
		Path:        "/api/colors/pack",
		Summary:     "Pack Color",
		Description: "Pack red, green, blue and white channels into a 32-bit WRGB value",
		Tags:        []string{"colors"},
		Errors:      []int{401, 422},
		Security:    withAuth(),
	}, func(_ context.Context, input *models.ColorPackRequest) (*models.ColorResponse, error) {
		metrics.RecordConversion(metrics.ConversionPack)
		return &models.ColorResponse{Body: models.NewColorData(models.ChannelsColor(input.Body))}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "unpack-color",
		Method:      http.MethodGet,
		Path:        "/api/colors/{value}",
		Summary:     "Unpack Color",
		Description: "Unpack a 32-bit WRGB value given as decimal, 0x hex, #RRGGBB or #WWRRGGBB",
		Tags:        []string{"colors"},
		Errors:      []int{400, 401},
		Security:    withAuth(),
	}, func(_ context.Context, input *models.ColorUnpackInput) (*models.ColorResponse, error) {
		metrics.RecordConversion(metrics.ConversionUnpack)
		c, err := parseColorValue(input.Value)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid color value", err)
		}
		return &models.ColorResponse{Body: models.NewColorData(c)}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "crossfade-colors",
		Method:      http.MethodPost,
		Path:        "/api/colors/crossfade",
		Summary:     "Crossfade Preview",
		Description: "Compute the colors of a crossfade. With output set, every color is passed through the node's offsets, brightness cap and capability.",
		Tags:        []string{"colors"},
		Errors:      []int{401, 422},
		Security:    withAuth(),
	}, func(_ context.Context, input *models.CrossfadeRequest) (*models.CrossfadeResponse, error) {
		metrics.RecordConversion(metrics.ConversionCrossfade)

		body := input.Body
		fade := color.Crossfade(models.ChannelsColor(body.From), models.ChannelsColor(body.To), body.Steps)

		var cfg node.Config
		if body.Output {
			// Previews still work before the first valid config.
			var ok bool
			if cfg, ok = s.store.Current(); !ok {
				cfg = node.Default()
			}
		}

		out := make([]models.ColorData, 0, len(fade))
		for _, c := range fade {
			if body.Output {
				c = cfg.Output(c)
			}
			out = append(out, models.NewColorData(c))
		}
		return &models.CrossfadeResponse{Body: models.CrossfadeData{Colors: out}}, nil
	})
}

// parseColorValue accepts #RRGGBB / #WWRRGGBB or a decimal / 0x number.
func parseColorValue(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		return color.ParseHex(s)
	}
	return color.ParseUint32(s)
}
