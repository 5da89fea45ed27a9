package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/vibelight/internal/api/models"
	"github.com/smazurov/vibelight/internal/effect"
)

func (s *Server) registerEffectRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-effects",
		Method:      http.MethodGet,
		Path:        "/api/effects",
		Summary:     "List Effects",
		Description: "List every lighting effect with its wire token",
		Tags:        []string{"effects"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.EffectsResponse, error) {
		all := effect.All()
		list := make([]models.EffectData, 0, len(all))
		for _, e := range all {
			list = append(list, effectData(e))
		}
		return &models.EffectsResponse{Body: models.EffectsData{Effects: list}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "parse-effect",
		Method:      http.MethodGet,
		Path:        "/api/effects/{token}",
		Summary:     "Resolve Effect",
		Description: "Resolve a token to an effect. Unknown tokens resolve to none.",
		Tags:        []string{"effects"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(_ context.Context, input *models.EffectInput) (*models.EffectParseResponse, error) {
		return &models.EffectParseResponse{
			Body: models.EffectParseData{
				Requested:  input.Token,
				Known:      effect.Known(input.Token),
				EffectData: effectData(effect.Parse(input.Token)),
			},
		}, nil
	})
}

func effectData(e effect.Effect) models.EffectData {
	return models.EffectData{Token: e.String(), ID: int(e)}
}
