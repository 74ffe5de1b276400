package api

import (
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PatientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	HealthInfo string `json:"healthInfo"`
	Password   string `json:"password"`
}

type IncidentRequest struct {
	PatientID       string                  `json:"patientId"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Comments        string                  `json:"comments"`
	AppointmentDate string                  `json:"appointmentDate"`
	Cost            *float64                `json:"cost"`
	Status          clinic.IncidentStatus   `json:"status"`
	Files           []clinic.FileAttachment `json:"files"`
}

type CalendarResponse struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Days  []clinic.DayCell `json:"days"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
