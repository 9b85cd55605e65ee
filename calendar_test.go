// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate_test

import (
	"testing"
	"time"

	"cloudeng.io/localdate"
)

func TestDaysIn(t *testing.T) {
	total, totalLeap := 0, 0
	for month := 1; month <= 12; month++ {
		total += localdate.DaysInMonth(2023, month)
		totalLeap += localdate.DaysInMonth(2024, month)
	}
	if got, want := total, localdate.DaysInYear(2023); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := totalLeap, localdate.DaysInYear(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		year, month, days int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2023, 4, 30},
		{2023, 0, 0},
		{2023, 13, 0},
		{2023, -1, 0},
	} {
		if got, want := localdate.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}

	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2023, false}, {2024, true}, {1900, false}, {2000, true},
		{1600, true}, {1500, false}, {0, true}, {-1, false}, {-4, true},
	} {
		if got, want := localdate.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		want := 28
		if tc.leap {
			want = 29
		}
		if got := localdate.DaysInFeb(tc.year); got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDayOfYearBounds(t *testing.T) {
	// Every valid date's day of the year is in range and
	// consecutive dates have consecutive days of the year.
	for _, year := range []int{2023, 2024} {
		prev := 0
		for d := newDate(year, 1, 1); d.Year() == year; d = d.AddDays(1) {
			doy := d.DayOfYear()
			if got, want := doy, prev+1; got != want {
				t.Fatalf("%v: got %v, want %v", d, got, want)
			}
			prev = doy
		}
		if got, want := prev, localdate.DaysInYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
	// Months outside of the range 1-12 are not an error.
	if got, want := newDate(2023, 13, 1).DayOfYear(), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newDate(2023, 0, 1).DayOfYear(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarMatchesTime(t *testing.T) {
	for year := 1600; year <= 2400; year++ {
		for month := 1; month <= 12; month++ {
			// Day 0 of the following month is the last day of this one.
			last := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC)
			if got, want := localdate.DaysInMonth(year, month), last.Day(); got != want {
				t.Fatalf("%v-%v: got %v, want %v", year, month, got, want)
			}
			if got, want := newDate(year, month, last.Day()).DayOfYear(), last.YearDay(); got != want {
				t.Fatalf("%v-%v: got %v, want %v", year, month, got, want)
			}
		}
	}
}
