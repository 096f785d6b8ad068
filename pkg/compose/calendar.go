package compose

import "time"

// Weekdays are the column labels of the monthly planner, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// MonthWeeks lays the days of a month into Monday-first week rows. Cells
// outside the month are zero. A month spans four to six rows depending on
// its length and the weekday of its first day.
func MonthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	col := (int(first.Weekday()) + 6) % 7 // Monday is column 0

	var weeks [][7]int
	var week [7]int
	for day := 1; day <= DaysIn(year, month); day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
