package clinic

type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
)

type IncidentStatus string

const (
	StatusScheduled IncidentStatus = "Scheduled"
	StatusCompleted IncidentStatus = "Completed"
	StatusCanceled  IncidentStatus = "Canceled"
)

// Collection keys in the persistent medium. The session component also
// reads UsersKey directly, bypassing the in-memory store.
const (
	UsersKey       = "users"
	PatientsKey    = "patients"
	IncidentsKey   = "incidents"
	CurrentUserKey = "currentUser"
)

// User is a login account. Patient accounts carry a back-reference to
// their patient record; admin accounts are seed data only.
type User struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	PatientID string `json:"patientId,omitempty"`
}

// Patient never carries a password; credentials live on the paired User.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	HealthInfo string `json:"healthInfo"`
}

type FileAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Incident is an appointment/treatment record for a patient.
// AppointmentDate is an ISO-8601 local timestamp kept as the caller
// supplied it.
type Incident struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patientId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Comments        string           `json:"comments"`
	AppointmentDate string           `json:"appointmentDate"`
	Cost            *float64         `json:"cost"`
	Status          IncidentStatus   `json:"status"`
	Files           []FileAttachment `json:"files"`
}
