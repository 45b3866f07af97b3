package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health and whether upstream credentials are configured",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy or degraded"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy or degraded"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	webhookReady, catalogReady := s.services.Recommendations.Readiness()

	components := map[string]ComponentHealth{
		"webhook": credentialHealth(webhookReady, "N8N_WEBHOOK_URL"),
		"catalog": credentialHealth(catalogReady, "TMDB_API_KEY"),
	}

	overall := "healthy"
	for _, c := range components {
		if c.Status != "healthy" {
			overall = "degraded"
		}
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// credentialHealth reports a component as degraded when its credential is missing.
// The server still serves requests; recommendation calls fail until it is set.
func credentialHealth(ready bool, envKey string) ComponentHealth {
	if ready {
		return ComponentHealth{Status: "healthy"}
	}
	return ComponentHealth{
		Status:  "degraded",
		Message: envKey + " not configured",
	}
}
