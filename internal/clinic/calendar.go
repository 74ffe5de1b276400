package clinic

import "time"

const dayKeyLayout = "2006-01-02"

// appointmentDateLayouts are tried in order when parsing an incident's
// AppointmentDate. Layouts without a zone are read in the grid's location.
var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DayCell is one cell of the month grid. Appointments is only populated
// for cells of the reference month; leading and trailing filler cells
// always carry an empty list.
type DayCell struct {
	Key            string     `json:"key"` // YYYY-MM-DD
	DayOfMonth     int        `json:"dayOfMonth"`
	InCurrentMonth bool       `json:"isCurrentMonth"`
	IsToday        bool       `json:"isToday"`
	Appointments   []Incident `json:"appointments"`
}

// MonthGrid builds the Sunday-first calendar grid for one reference
// month: trailing days of the previous month to fill the first week,
// every day of the month with its incidents bucketed by local calendar
// day, and leading days of the next month to complete the last week. The
// result length is always a multiple of 7 and cell dates strictly
// increase. Pure function of its inputs; now supplies both the today
// marker and the location dates are interpreted in.
func MonthGrid(year int, month time.Month, incidents []Incident, now time.Time) []DayCell {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	today := now.Format(dayKeyLayout)

	var cells []DayCell

	// Trailing days of the previous month.
	for i := int(first.Weekday()); i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, DayCell{
			Key:          d.Format(dayKeyLayout),
			DayOfMonth:   d.Day(),
			Appointments: []Incident{},
		})
	}

	// Every day of the reference month.
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, loc)
		key := d.Format(dayKeyLayout)
		cells = append(cells, DayCell{
			Key:            key,
			DayOfMonth:     day,
			InCurrentMonth: true,
			IsToday:        key == today,
			Appointments:   incidentsOn(incidents, key, loc),
		})
	}

	// Leading days of the next month, up to a whole week.
	last := time.Date(year, month, daysInMonth, 0, 0, 0, 0, loc)
	for i := 1; i <= 6-int(last.Weekday()); i++ {
		d := last.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Key:          d.Format(dayKeyLayout),
			DayOfMonth:   d.Day(),
			Appointments: []Incident{},
		})
	}

	return cells
}

// incidentsOn collects the incidents whose appointment date falls on the
// given calendar day. A linear scan per day is fine at clinic scale.
func incidentsOn(incidents []Incident, key string, loc *time.Location) []Incident {
	matched := []Incident{}
	for _, inc := range incidents {
		t, ok := parseAppointmentDate(inc.AppointmentDate, loc)
		if !ok {
			continue
		}
		if t.Format(dayKeyLayout) == key {
			matched = append(matched, inc)
		}
	}
	return matched
}

func parseAppointmentDate(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
