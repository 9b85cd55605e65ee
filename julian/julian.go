// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package julian converts between calendar dates and Julian Day Numbers
// using the standard astronomical algorithm (Meeus, Astronomical Algorithms,
// chapter 7). Dates before 1582-10-15 are interpreted in the Julian calendar
// and dates on or after it in the Gregorian calendar. The ten dates dropped
// by the reform, 1582-10-05 to 1582-10-14, are not special cased; they are
// converted as Julian dates and hence do not survive a round trip.
//
// The commonly quoted form of the calendar to day number formula applies the
// Gregorian correction to every date. ToJulianDay omits it before 1582-10-15,
// as Meeus does, so that ToJulianDay and FromJulianDay are inverses for
// Julian calendar dates too. Day numbers for those dates therefore differ
// from that form, by 10 days in the 16th century for example.
package julian

import "math"

// GregorianAdoption is the Julian Day Number of 1582-10-15, the first day
// of the Gregorian calendar.
const GregorianAdoption = 2299161

func floor(v float64) int {
	return int(math.Floor(v))
}

func beforeReform(year, month, day int) bool {
	switch {
	case year != 1582:
		return year < 1582
	case month != 10:
		return month < 10
	default:
		return day < 15
	}
}

// ToJulianDay returns the Julian Day Number for the specified year, month
// and day. No range checking is performed, out of range values produce
// deterministic, if meaningless, results.
func ToJulianDay(year, month, day int) int {
	julian := beforeReform(year, month, day)
	if month <= 2 {
		year--
		month += 12
	}
	b := 0
	if !julian {
		a := floor(float64(year) / 100)
		b = 2 - a + floor(float64(a)/4)
	}
	return floor(365.25*float64(year+4716)) + floor(30.6001*float64(month+1)) + day + b - 1524
}

// FromJulianDay returns the year, month and day for the specified
// Julian Day Number.
func FromJulianDay(jdn int) (year, month, day int) {
	a := jdn
	if jdn >= GregorianAdoption {
		alpha := floor((float64(jdn) - 1867216.25) / 36524.25)
		a = jdn + 1 + alpha - floor(float64(alpha)/4)
	}
	b := a + 1524
	c := floor((float64(b) - 122.1) / 365.25)
	d := floor(365.25 * float64(c))
	e := floor(float64(b-d) / 30.6001)

	day = b - d - floor(30.6001*float64(e))
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}
	return
}
