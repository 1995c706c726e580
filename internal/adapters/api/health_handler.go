package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"xisms.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /api/health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	overall := ports.HealthStatusHealthy
	for _, status := range components {
		if !status.IsHealthy() {
			overall = ports.HealthStatusUnhealthy
			break
		}
	}

	code := http.StatusOK
	if overall != ports.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: overall, Components: components})
}
