package compose

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2025); got != 365 {
		t.Errorf("DaysInYear(2025) = %d, want 365", got)
	}
	if got := DaysInYear(2024); got != 366 {
		t.Errorf("DaysInYear(2024) = %d, want 366", got)
	}
}

func TestMonthWeeksRowCounts(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		rows  int
	}{
		// Feb 2021 starts on a Monday and has exactly 28 days: four rows.
		{2021, time.February, 4},
		// Feb 2025 starts on a Saturday, so its 28 days need five rows.
		{2025, time.February, 5},
		{2025, time.January, 5},
		// Mar 2025 starts on a Saturday with 31 days: six rows.
		{2025, time.March, 6},
		{2025, time.June, 6},
	}
	for _, tt := range tests {
		if got := len(MonthWeeks(tt.year, tt.month)); got != tt.rows {
			t.Errorf("MonthWeeks(%d, %s) rows = %d, want %d", tt.year, tt.month, got, tt.rows)
		}
	}
}

func TestMonthWeeksLayout(t *testing.T) {
	weeks := MonthWeeks(2025, time.February)

	// Feb 1 2025 is a Saturday: first row is five zeros, then 1, 2.
	want := [7]int{0, 0, 0, 0, 0, 1, 2}
	if weeks[0] != want {
		t.Errorf("first week = %v, want %v", weeks[0], want)
	}

	// Every day appears exactly once and in order.
	var days []int
	for _, week := range weeks {
		for _, d := range week {
			if d != 0 {
				days = append(days, d)
			}
		}
	}
	if len(days) != 28 {
		t.Fatalf("got %d days, want 28", len(days))
	}
	for i, d := range days {
		if d != i+1 {
			t.Fatalf("days[%d] = %d, want %d", i, d, i+1)
		}
	}
}

func TestMonthWeeksMondayFirst(t *testing.T) {
	// Sep 2025 starts on a Monday: day 1 lands in column 0.
	weeks := MonthWeeks(2025, time.September)
	if weeks[0][0] != 1 {
		t.Errorf("first cell = %d, want 1", weeks[0][0])
	}
	// Sundays are 7, 14, 21, 28 in column 6.
	for i, want := range []int{7, 14, 21, 28} {
		if weeks[i][6] != want {
			t.Errorf("week %d sunday = %d, want %d", i, weeks[i][6], want)
		}
	}
}
