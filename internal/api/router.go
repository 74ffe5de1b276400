package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/session"
)

type RouterConfig struct {
	Store    *clinic.Store
	Sessions *session.Manager
	Medium   kv.Store
	Env      string
	Version  string
}

func NewRouter(cfg RouterConfig) http.Handler {
	h := NewHandlers(cfg.Store, cfg.Sessions)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Health endpoints
	health := NewHealthHandler(cfg.Medium, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/logout", h.logout)
		r.Get("/session", h.currentSession)

		// A patient session may read its own record and appointments.
		r.Get("/patients/{id}", h.getPatient)
		r.Get("/patients/{id}/incidents", h.listPatientIncidents)

		// Management surface, Admin only.
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/patients", h.listPatients)
			r.Post("/patients", h.createPatient)
			r.Put("/patients/{id}", h.updatePatient)
			r.Delete("/patients/{id}", h.deletePatient)

			r.Get("/incidents", h.listIncidents)
			r.Post("/incidents", h.createIncident)
			r.Get("/incidents/{id}", h.getIncident)
			r.Put("/incidents/{id}", h.updateIncident)
			r.Delete("/incidents/{id}", h.deleteIncident)

			r.Get("/calendar", h.calendar)
			r.Get("/dashboard", h.dashboard)
		})
	})

	return r
}
