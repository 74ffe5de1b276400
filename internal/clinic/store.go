// Package clinic owns the record store: the Users, Patients and Incidents
// collections, their cross-collection integrity rules, and the calendar
// grid derived from incidents.
package clinic

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrIncidentNotFound = errors.New("incident not found")
)

// Store holds the three collections in memory and mirrors each of them to
// the persistent medium as a whole JSON array after every mutation. The
// mirror write is best effort: failures are logged, never returned, and
// the in-memory state stays authoritative for the process lifetime.
type Store struct {
	kv kv.Store

	mu        sync.Mutex
	users     []User
	patients  []Patient
	incidents []Incident
}

// NewStore initializes each collection from the persistent medium,
// falling back to the seed dataset when a key is absent or its value does
// not parse, then mirrors the loaded state back so the medium always
// holds the collections a credential check will read.
func NewStore(ctx context.Context, medium kv.Store) *Store {
	s := &Store{
		kv:        medium,
		users:     loadCollection(ctx, medium, UsersKey, seedUsers()),
		patients:  loadCollection(ctx, medium, PatientsKey, seedPatients()),
		incidents: loadCollection(ctx, medium, IncidentsKey, seedIncidents()),
	}

	persist(ctx, medium, UsersKey, s.users)
	persist(ctx, medium, PatientsKey, s.patients)
	persist(ctx, medium, IncidentsKey, s.incidents)

	return s
}

func loadCollection[T any](ctx context.Context, medium kv.Store, key string, seed []T) []T {
	raw, ok, err := medium.Get(ctx, key)
	if err != nil {
		log.Printf("load %s: %v, using seed data", key, err)
		return seed
	}
	if !ok {
		return seed
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("parse %s: %v, using seed data", key, err)
		return seed
	}
	return records
}

// persist mirrors one collection to the medium.
func persist[T any](ctx context.Context, medium kv.Store, key string, records []T) {
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("marshal %s: %v", key, err)
		return
	}
	if err := medium.Set(ctx, key, string(data)); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

// Users returns a snapshot of the users collection.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.users...)
}

// Patients returns a snapshot of the patients collection.
func (s *Store) Patients() []Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Patient(nil), s.patients...)
}

// Incidents returns a snapshot of the incidents collection.
func (s *Store) Incidents() []Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Incident(nil), s.incidents...)
}

// Patient looks up a single patient by id.
func (s *Store) Patient(id string) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return Patient{}, ErrPatientNotFound
}

// Incident looks up a single incident by id.
func (s *Store) Incident(id string) (Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inc := range s.incidents {
		if inc.ID == id {
			return inc, nil
		}
	}
	return Incident{}, ErrIncidentNotFound
}

// IncidentsByPatient returns the incidents referencing one patient, in
// collection order.
func (s *Store) IncidentsByPatient(patientID string) []Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Incident
	for _, inc := range s.incidents {
		if inc.PatientID == patientID {
			out = append(out, inc)
		}
	}
	return out
}

// NewPatient carries the fields for AddPatient. Password belongs to the
// paired login account, never to the patient record itself.
type NewPatient struct {
	Name       string
	Email      string
	DOB        string
	Contact    string
	HealthInfo string
	Password   string
}

// AddPatient inserts a patient record and its paired Patient-role user in
// one operation. The user mirrors the patient's email and stores the
// given password as-is.
func (s *Store) AddPatient(ctx context.Context, data NewPatient) Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient := Patient{
		ID:         newID("p"),
		Name:       data.Name,
		Email:      data.Email,
		DOB:        data.DOB,
		Contact:    data.Contact,
		HealthInfo: data.HealthInfo,
	}
	user := User{
		ID:        newID("u"),
		Role:      RolePatient,
		Email:     data.Email,
		Password:  data.Password,
		PatientID: patient.ID,
	}

	s.patients = append(s.patients, patient)
	s.users = append(s.users, user)

	persist(ctx, s.kv, PatientsKey, s.patients)
	persist(ctx, s.kv, UsersKey, s.users)

	return patient
}

// UpdatePatient carries the fields for the update operation. An empty
// Password leaves the paired user's stored password unchanged.
type UpdatePatient struct {
	ID         string
	Name       string
	Email      string
	DOB        string
	Contact    string
	HealthInfo string
	Password   string
}

// UpdatePatient replaces the matching patient record wholesale and keeps
// the paired user's email (and optionally password) in sync.
func (s *Store) UpdatePatient(ctx context.Context, data UpdatePatient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.patients {
		if p.ID == data.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPatientNotFound
	}

	s.patients[idx] = Patient{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		DOB:        data.DOB,
		Contact:    data.Contact,
		HealthInfo: data.HealthInfo,
	}

	for i, u := range s.users {
		if u.PatientID == data.ID {
			s.users[i].Email = data.Email
			if data.Password != "" {
				s.users[i].Password = data.Password
			}
		}
	}

	persist(ctx, s.kv, PatientsKey, s.patients)
	persist(ctx, s.kv, UsersKey, s.users)

	return nil
}

// DeletePatient removes the patient's incidents, then its paired user,
// then the patient record itself, so no incident ever outlives its
// patient if the sequence is interrupted.
func (s *Store) DeletePatient(ctx context.Context, patientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.patients {
		if p.ID == patientID {
			found = true
			break
		}
	}
	if !found {
		return ErrPatientNotFound
	}

	kept := s.incidents[:0]
	for _, inc := range s.incidents {
		if inc.PatientID != patientID {
			kept = append(kept, inc)
		}
	}
	s.incidents = kept
	persist(ctx, s.kv, IncidentsKey, s.incidents)

	users := s.users[:0]
	for _, u := range s.users {
		if u.PatientID != patientID {
			users = append(users, u)
		}
	}
	s.users = users
	persist(ctx, s.kv, UsersKey, s.users)

	patients := s.patients[:0]
	for _, p := range s.patients {
		if p.ID != patientID {
			patients = append(patients, p)
		}
	}
	s.patients = patients
	persist(ctx, s.kv, PatientsKey, s.patients)

	return nil
}

// NewIncident carries the fields for AddIncident. The store trusts
// PatientID; existence checks belong to the caller.
type NewIncident struct {
	PatientID       string
	Title           string
	Description     string
	Comments        string
	AppointmentDate string
	Cost            *float64
	Status          IncidentStatus
	Files           []FileAttachment
}

// AddIncident assigns a new id, defaults Files to an empty list when
// absent and inserts the record.
func (s *Store) AddIncident(ctx context.Context, data NewIncident) Incident {
	s.mu.Lock()
	defer s.mu.Unlock()

	incident := Incident{
		ID:              newID("i"),
		PatientID:       data.PatientID,
		Title:           data.Title,
		Description:     data.Description,
		Comments:        data.Comments,
		AppointmentDate: data.AppointmentDate,
		Cost:            data.Cost,
		Status:          data.Status,
		Files:           data.Files,
	}
	if incident.Files == nil {
		incident.Files = []FileAttachment{}
	}

	s.incidents = append(s.incidents, incident)
	persist(ctx, s.kv, IncidentsKey, s.incidents)

	return incident
}

// UpdateIncident replaces the incident matching data.ID wholesale; the
// caller supplies the complete desired record.
func (s *Store) UpdateIncident(ctx context.Context, data Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inc := range s.incidents {
		if inc.ID == data.ID {
			s.incidents[i] = data
			persist(ctx, s.kv, IncidentsKey, s.incidents)
			return nil
		}
	}
	return ErrIncidentNotFound
}

// DeleteIncident removes the single matching incident. No cascade.
func (s *Store) DeleteIncident(ctx context.Context, incidentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inc := range s.incidents {
		if inc.ID == incidentID {
			s.incidents = append(s.incidents[:i], s.incidents[i+1:]...)
			persist(ctx, s.kv, IncidentsKey, s.incidents)
			return nil
		}
	}
	return ErrIncidentNotFound
}
