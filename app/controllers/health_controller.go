package controllers

import (
	"net/http"
	"time"

	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/pkg/cache"
	"github.com/cropconnect/api/pkg/response"
)

var startedAt = time.Now()

type HealthController struct{}

func NewHealth() *HealthController { return &HealthController{} }

type healthPayload struct {
	Status    string `json:"status"`
	Env       string `json:"env"`
	Uptime    string `json:"uptime"`
	Cache     bool   `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// Check handles GET /health.
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, healthPayload{
		Status:    "ok",
		Env:       config.AppEnv(),
		Uptime:    time.Since(startedAt).Round(time.Second).String(),
		Cache:     cache.Enabled(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
