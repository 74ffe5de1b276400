package clinic

import (
	"testing"
	"time"
)

func TestMonthGridShape(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		year  int
		month time.Month
		cells int
	}{
		{2025, time.June, 35},     // starts Sunday, 30 days
		{2026, time.February, 28}, // starts Sunday, 28 days: exactly 4 weeks
		{2026, time.August, 42},   // starts Saturday, 31 days: 6 weeks
		{2025, time.July, 35},
		{2025, time.December, 35},
	}

	for _, tc := range cases {
		grid := MonthGrid(tc.year, tc.month, nil, now)

		if len(grid) != tc.cells {
			t.Fatalf("%v %d: expected %d cells, got %d", tc.month, tc.year, tc.cells, len(grid))
		}
		if len(grid)%7 != 0 {
			t.Fatalf("%v %d: cell count %d not a multiple of 7", tc.month, tc.year, len(grid))
		}

		inMonth := 0
		for i, cell := range grid {
			if cell.InCurrentMonth {
				inMonth++
			}
			if i > 0 && grid[i-1].Key >= cell.Key {
				t.Fatalf("%v %d: keys not strictly increasing at %d: %s then %s",
					tc.month, tc.year, i, grid[i-1].Key, cell.Key)
			}
		}
		daysInMonth := time.Date(tc.year, tc.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if inMonth != daysInMonth {
			t.Fatalf("%v %d: expected %d current-month cells, got %d", tc.month, tc.year, daysInMonth, inMonth)
		}

		// The grid always starts on a Sunday.
		first, err := time.Parse("2006-01-02", grid[0].Key)
		if err != nil {
			t.Fatalf("bad key %q: %v", grid[0].Key, err)
		}
		if first.Weekday() != time.Sunday {
			t.Fatalf("%v %d: grid starts on %v", tc.month, tc.year, first.Weekday())
		}
	}
}

func TestMonthGridBucketsByLocalDay(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	incidents := []Incident{
		{ID: "i1", PatientID: "p1", Title: "Checkup", AppointmentDate: "2025-06-29T10:00"},
		{ID: "i2", PatientID: "p1", Title: "Cleaning", AppointmentDate: "2025-06-29T15:30"},
		{ID: "i3", PatientID: "p2", Title: "Filling", AppointmentDate: "2025-06-10T09:00"},
		{ID: "i4", PatientID: "p2", Title: "Garbage", AppointmentDate: "not a date"},
	}

	grid := MonthGrid(2025, time.June, incidents, now)

	for _, cell := range grid {
		switch cell.Key {
		case "2025-06-29":
			if len(cell.Appointments) != 2 {
				t.Fatalf("expected 2 appointments on 2025-06-29, got %d", len(cell.Appointments))
			}
			if cell.Appointments[0].ID != "i1" || cell.Appointments[1].ID != "i2" {
				t.Fatalf("appointment order not preserved: %+v", cell.Appointments)
			}
		case "2025-06-10":
			if len(cell.Appointments) != 1 || cell.Appointments[0].ID != "i3" {
				t.Fatalf("expected i3 on 2025-06-10, got %+v", cell.Appointments)
			}
		default:
			if len(cell.Appointments) != 0 {
				t.Fatalf("unexpected appointments on %s: %+v", cell.Key, cell.Appointments)
			}
		}
	}
}

func TestMonthGridFillerCellsStayEmpty(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	// July 1 falls inside June's trailing filler row.
	incidents := []Incident{
		{ID: "i1", PatientID: "p1", Title: "Checkup", AppointmentDate: "2025-07-01T09:00"},
	}

	grid := MonthGrid(2025, time.June, incidents, now)

	for _, cell := range grid {
		if cell.Key == "2025-07-01" {
			if cell.InCurrentMonth {
				t.Fatal("2025-07-01 must be a filler cell in the June grid")
			}
			if len(cell.Appointments) != 0 {
				t.Fatalf("filler cell carries appointments: %+v", cell.Appointments)
			}
			return
		}
	}
	t.Fatal("June 2025 grid is missing the 2025-07-01 filler cell")
}

func TestMonthGridTodayFlag(t *testing.T) {
	now := time.Date(2025, time.June, 29, 8, 30, 0, 0, time.UTC)

	grid := MonthGrid(2025, time.June, nil, now)
	todays := 0
	for _, cell := range grid {
		if cell.IsToday {
			todays++
			if cell.Key != "2025-06-29" {
				t.Fatalf("wrong cell flagged as today: %s", cell.Key)
			}
		}
	}
	if todays != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todays)
	}

	// Another month's grid never flags today.
	for _, cell := range MonthGrid(2025, time.July, nil, now) {
		if cell.IsToday {
			t.Fatalf("today flagged outside its month: %s", cell.Key)
		}
	}
}

func TestParseAppointmentDateLayouts(t *testing.T) {
	loc := time.UTC
	for _, raw := range []string{
		"2025-06-29T10:00",
		"2025-06-29T10:00:00",
		"2025-06-29T10:00:00Z",
		"2025-06-29",
	} {
		got, ok := parseAppointmentDate(raw, loc)
		if !ok {
			t.Fatalf("failed to parse %q", raw)
		}
		if got.Format(dayKeyLayout) != "2025-06-29" {
			t.Fatalf("%q parsed to wrong day %s", raw, got.Format(dayKeyLayout))
		}
	}

	if _, ok := parseAppointmentDate("29/06/2025", loc); ok {
		t.Fatal("expected parse failure for unsupported layout")
	}
}
