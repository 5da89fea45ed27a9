package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/vibelight/internal/api/models"
	"github.com/smazurov/vibelight/internal/node"
)

func (s *Server) registerNodeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-node-config",
		Method:      http.MethodGet,
		Path:        "/api/node",
		Summary:     "Node Configuration",
		Description: "Get the active node configuration. WiFi and MQTT passwords are masked.",
		Tags:        []string{"node"},
		Errors:      []int{401, 503},
		Security:    withAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.NodeResponse, error) {
		cfg, err := s.currentConfig()
		if err != nil {
			return nil, err
		}
		return &models.NodeResponse{Body: cfg.Redacted()}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-node-topics",
		Method:      http.MethodGet,
		Path:        "/api/node/topics",
		Summary:     "Node MQTT Topics",
		Description: "Get the MQTT client id, username and topics derived from the node id",
		Tags:        []string{"node"},
		Errors:      []int{401, 503},
		Security:    withAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.TopicsResponse, error) {
		cfg, err := s.currentConfig()
		if err != nil {
			return nil, err
		}
		return &models.TopicsResponse{
			Body: models.TopicsData{
				ClientID:     cfg.MQTT.ClientID,
				Username:     cfg.MQTT.Username,
				StateTopic:   cfg.MQTT.StateTopic,
				CommandTopic: cfg.MQTT.CommandTopic,
			},
		}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-node-status",
		Method:      http.MethodGet,
		Path:        "/api/node/status",
		Summary:     "Node Status",
		Description: "Get the configuration file, load time, last load error and status LED pattern",
		Tags:        []string{"node"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(_ context.Context, _ *struct{}) (*models.NodeStatusResponse, error) {
		body := models.NodeStatusData{Status: s.store.Status()}
		if s.options.LEDManager != nil {
			body.StatusLED = s.options.LEDManager.Pattern()
		}
		return &models.NodeStatusResponse{Body: body}, nil
	})
}

func (s *Server) currentConfig() (node.Config, error) {
	cfg, ok := s.store.Current()
	if !ok {
		return node.Config{}, huma.Error503ServiceUnavailable("No valid node configuration loaded")
	}
	return cfg, nil
}
