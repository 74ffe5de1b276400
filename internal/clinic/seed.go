package clinic

func f64(v float64) *float64 { return &v }

// seedUsers, seedPatients and seedIncidents are the fixed dataset a fresh
// (or unrecoverable) deployment starts from: one admin account and one
// patient with a paired login and two incidents.
func seedUsers() []User {
	return []User{
		{ID: "u1", Role: RoleAdmin, Email: "admin@clinic.local", Password: "admin123"},
		{ID: "u2", Role: RolePatient, Email: "john@clinic.local", Password: "patient123", PatientID: "p1"},
	}
}

func seedPatients() []Patient {
	return []Patient{
		{
			ID:         "p1",
			Name:       "John Doe",
			Email:      "john@clinic.local",
			DOB:        "1990-05-10",
			Contact:    "1234567890",
			HealthInfo: "No allergies",
		},
	}
}

func seedIncidents() []Incident {
	return []Incident{
		{
			ID:              "i1",
			PatientID:       "p1",
			Title:           "Toothache",
			Description:     "Upper molar pain",
			Comments:        "Sensitive to cold",
			AppointmentDate: "2025-07-01T10:00",
			Cost:            f64(80),
			Status:          StatusCompleted,
			Files:           []FileAttachment{},
		},
		{
			ID:              "i2",
			PatientID:       "p1",
			Title:           "Routine checkup",
			Description:     "Six month review",
			AppointmentDate: "2025-07-15T09:30",
			Status:          StatusScheduled,
			Files:           []FileAttachment{},
		},
	}
}
