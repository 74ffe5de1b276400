package clinic

import (
	"sort"
	"time"
)

// DashboardStats are the admin landing-page figures: headline counts,
// revenue across completed incidents, and the next few upcoming
// appointments.
type DashboardStats struct {
	TotalPatients     int        `json:"totalPatients"`
	TotalAppointments int        `json:"totalAppointments"`
	TotalRevenue      float64    `json:"totalRevenue"`
	Upcoming          []Incident `json:"upcomingAppointments"`
}

// BuildDashboard derives the stats from collection snapshots. Upcoming
// holds at most limit incidents strictly after now, soonest first;
// incidents with unparseable dates are left out of it but still counted.
func BuildDashboard(patients []Patient, incidents []Incident, now time.Time, limit int) DashboardStats {
	stats := DashboardStats{
		TotalPatients:     len(patients),
		TotalAppointments: len(incidents),
		Upcoming:          []Incident{},
	}

	loc := now.Location()
	type timed struct {
		at  time.Time
		inc Incident
	}
	var future []timed

	for _, inc := range incidents {
		if inc.Status == StatusCompleted && inc.Cost != nil {
			stats.TotalRevenue += *inc.Cost
		}
		if t, ok := parseAppointmentDate(inc.AppointmentDate, loc); ok && t.After(now) {
			future = append(future, timed{at: t, inc: inc})
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].at.Before(future[j].at)
	})
	for i := 0; i < len(future) && i < limit; i++ {
		stats.Upcoming = append(stats.Upcoming, future[i].inc)
	}

	return stats
}
