package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/vibelight/internal/api/models"
	"github.com/smazurov/vibelight/internal/node"
	"github.com/smazurov/vibelight/internal/version"
)

func (s *Server) registerSystemRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health",
		Description: "Check API health status",
		Tags:        []string{"system"},
		Security:    noAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.HealthResponse, error) {
		_, loaded := s.store.Current()
		return &models.HealthResponse{
			Body: models.HealthData{
				Status:       "ok",
				Message:      "API is healthy",
				ConfigLoaded: loaded,
			},
		}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        "/api/version",
		Summary:     "Version",
		Description: "Get application version information",
		Tags:        []string{"system"},
		Security:    noAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.VersionResponse, error) {
		return &models.VersionResponse{Body: version.Get(node.APIVersion)}, nil
	})
}
