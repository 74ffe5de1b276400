package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/session"
)

const dashboardUpcomingLimit = 10

type Handlers struct {
	store    *clinic.Store
	sessions *session.Manager
	now      func() time.Time
}

func NewHandlers(store *clinic.Store, sessions *session.Manager) *Handlers {
	return &Handlers{
		store:    store,
		sessions: sessions,
		now:      time.Now,
	}
}

// --- auth ---

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_fields", "email and password are required")
		return
	}

	user, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) currentSession(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	writeJSON(w, http.StatusOK, user)
}

// --- patients ---

func (h *Handlers) listPatients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Patients())
}

func (h *Handlers) getPatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, _ := userFrom(r.Context())
	if !canAccessPatient(user, id) {
		writeError(w, http.StatusForbidden, "forbidden", "patients may only view their own record")
		return
	}

	patient, err := h.store.Patient(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *Handlers) createPatient(w http.ResponseWriter, r *http.Request) {
	var req PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if msg, ok := validatePatient(req, true); !ok {
		writeError(w, http.StatusBadRequest, "missing_fields", msg)
		return
	}

	patient := h.store.AddPatient(r.Context(), clinic.NewPatient{
		Name:       req.Name,
		Email:      req.Email,
		DOB:        req.DOB,
		Contact:    req.Contact,
		HealthInfo: req.HealthInfo,
		Password:   req.Password,
	})

	writeJSON(w, http.StatusCreated, patient)
}

func (h *Handlers) updatePatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if msg, ok := validatePatient(req, false); !ok {
		writeError(w, http.StatusBadRequest, "missing_fields", msg)
		return
	}

	err := h.store.UpdatePatient(r.Context(), clinic.UpdatePatient{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		DOB:        req.DOB,
		Contact:    req.Contact,
		HealthInfo: req.HealthInfo,
		Password:   req.Password,
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}

	patient, err := h.store.Patient(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *Handlers) deletePatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeletePatient(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listPatientIncidents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, _ := userFrom(r.Context())
	if !canAccessPatient(user, id) {
		writeError(w, http.StatusForbidden, "forbidden", "patients may only view their own appointments")
		return
	}

	if _, err := h.store.Patient(id); err != nil {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}

	incidents := h.store.IncidentsByPatient(id)
	if incidents == nil {
		incidents = []clinic.Incident{}
	}
	writeJSON(w, http.StatusOK, incidents)
}

// validatePatient enforces the presence rules the store itself does not:
// name, email, dob and contact always; password only on create.
func validatePatient(req PatientRequest, create bool) (string, bool) {
	switch {
	case req.Name == "":
		return "name is required", false
	case req.Email == "":
		return "email is required", false
	case req.DOB == "":
		return "dob is required", false
	case req.Contact == "":
		return "contact is required", false
	case create && req.Password == "":
		return "password is required", false
	}
	return "", true
}

// --- incidents ---

func (h *Handlers) listIncidents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Incidents())
}

func (h *Handlers) getIncident(w http.ResponseWriter, r *http.Request) {
	incident, err := h.store.Incident(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "incident_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, incident)
}

func (h *Handlers) createIncident(w http.ResponseWriter, r *http.Request) {
	var req IncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if msg, ok := validateIncident(req); !ok {
		writeError(w, http.StatusBadRequest, "missing_fields", msg)
		return
	}

	// The store trusts patientId; the existence check lives here.
	if _, err := h.store.Patient(req.PatientID); err != nil {
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = clinic.StatusScheduled
	}

	incident := h.store.AddIncident(r.Context(), clinic.NewIncident{
		PatientID:       req.PatientID,
		Title:           req.Title,
		Description:     req.Description,
		Comments:        req.Comments,
		AppointmentDate: req.AppointmentDate,
		Cost:            req.Cost,
		Status:          status,
		Files:           req.Files,
	})

	writeJSON(w, http.StatusCreated, incident)
}

func (h *Handlers) updateIncident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req IncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if msg, ok := validateIncident(req); !ok {
		writeError(w, http.StatusBadRequest, "missing_fields", msg)
		return
	}

	files := req.Files
	if files == nil {
		files = []clinic.FileAttachment{}
	}

	// Wholesale replacement: the caller supplies the complete record.
	err := h.store.UpdateIncident(r.Context(), clinic.Incident{
		ID:              id,
		PatientID:       req.PatientID,
		Title:           req.Title,
		Description:     req.Description,
		Comments:        req.Comments,
		AppointmentDate: req.AppointmentDate,
		Cost:            req.Cost,
		Status:          req.Status,
		Files:           files,
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "incident_not_found", err.Error())
		return
	}

	incident, err := h.store.Incident(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, incident)
}

func (h *Handlers) deleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteIncident(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "incident_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateIncident(req IncidentRequest) (string, bool) {
	switch {
	case req.PatientID == "":
		return "patientId is required", false
	case req.Title == "":
		return "title is required", false
	case req.AppointmentDate == "":
		return "appointmentDate is required", false
	}
	return "", true
}

// --- calendar and dashboard ---

func (h *Handlers) calendar(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_year", "year must be a number")
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			writeError(w, http.StatusBadRequest, "invalid_month", "month must be 1-12")
			return
		}
		month = time.Month(n)
	}

	days := clinic.MonthGrid(year, month, h.store.Incidents(), now)
	writeJSON(w, http.StatusOK, CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	})
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	stats := clinic.BuildDashboard(h.store.Patients(), h.store.Incidents(), h.now(), dashboardUpcomingLimit)
	writeJSON(w, http.StatusOK, stats)
}
