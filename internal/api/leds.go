package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/vibelight/internal/api/models"
)

// registerLEDRoutes registers host LED endpoints when a manager is present.
func (s *Server) registerLEDRoutes() {
	if s.options.LEDManager == nil {
		s.logger.Debug("LED manager not available, skipping LED routes")
		return
	}
	manager := s.options.LEDManager
	controller := manager.GetController()

	huma.Register(s.api, huma.Operation{
		OperationID: "control-led",
		Method:      http.MethodPost,
		Path:        "/api/leds",
		Summary:     "Control LED",
		Description: "Control a host LED's state and optional pattern. The status LED is overwritten on the next config event.",
		Tags:        []string{"leds"},
		Errors:      []int{400, 401},
		Security:    withAuth(),
	}, func(_ context.Context, input *models.LEDRequest) (*struct{}, error) {
		pattern := ""
		if input.Body.Pattern != nil {
			pattern = *input.Body.Pattern
		}
		if err := manager.Set(input.Body.Role, input.Body.Enabled, pattern); err != nil {
			return nil, huma.Error400BadRequest("Failed to control LED", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-led-capabilities",
		Method:      http.MethodGet,
		Path:        "/api/leds/capabilities",
		Summary:     "Get LED Capabilities",
		Description: "Get the LED roles and patterns available on this host",
		Tags:        []string{"leds"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.LEDCapabilitiesResponse, error) {
		return &models.LEDCapabilitiesResponse{
			Body: models.LEDCapabilitiesData{
				AvailableRoles:    controller.Available(),
				AvailablePatterns: controller.Patterns(),
			},
		}, nil
	})

	s.logger.Info("LED routes registered")
}
