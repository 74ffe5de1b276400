package api

import (
	"context"
	"net/http"
	"time"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
)

type HealthHandler struct {
	medium  kv.Store
	env     string
	version string
}

func NewHealthHandler(medium kv.Store, env, version string) *HealthHandler {
	return &HealthHandler{
		medium:  medium,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	status := "ok"

	// Check the persistence backend
	kvCtx, kvCancel := context.WithTimeout(ctx, 1*time.Second)
	err := h.medium.Ping(kvCtx)
	kvCancel()
	if err != nil {
		deps["storage"] = "down"
		status = "error"
	} else {
		deps["storage"] = "ok"
	}

	resp := ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Dependencies: deps,
	}

	httpStatus := http.StatusOK
	if status == "error" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
