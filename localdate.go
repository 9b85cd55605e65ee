// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package localdate provides an immutable, date only, value type with
// calendar aware arithmetic and a Julian Day Number representation that is
// used for ordering and comparison.
//
// A LocalDate may be created from any combination of year, month and day,
// including ones that do not correspond to a real date, and from strings
// whose fields are not numbers at all. Construction never fails; IsValid
// and Defined must be used to determine if a date is meaningful. Invalid
// dates support every operation, the results are well defined arithmetically
// but meaningless as calendar dates.
package localdate

import (
	"cmp"
	"time"

	"cloudeng.io/localdate/julian"
)

// fieldMask records which of the year, month and day fields are undefined,
// ie. were not numbers when the date was created.
type fieldMask uint8

const (
	yearUndefined fieldMask = 1 << iota
	monthUndefined
	dayUndefined

	allUndefined = yearUndefined | monthUndefined | dayUndefined
)

// LocalDate represents a calendar date without a time of day or time zone.
// The zero value is the invalid date 0-00-00 with a Julian Day Number of 0.
type LocalDate struct {
	year, month, day int
	undefined        fieldMask
	jdn              int
}

func newLocalDate(year, month, day int, undefined fieldMask) LocalDate {
	if undefined&yearUndefined != 0 {
		year = 0
	}
	if undefined&monthUndefined != 0 {
		month = 0
	}
	if undefined&dayUndefined != 0 {
		day = 0
	}
	d := LocalDate{year: year, month: month, day: day, undefined: undefined}
	if undefined == 0 {
		d.jdn = julian.ToJulianDay(year, month, day)
	}
	return d
}

// FromParts returns the LocalDate for the given year, month and day. The
// values are stored as is, without any normalization or range checking.
func FromParts(year, month, day int) LocalDate {
	return newLocalDate(year, month, day, 0)
}

// FromJulianDay returns the LocalDate for the given Julian Day Number.
func FromJulianDay(jdn int) LocalDate {
	return FromParts(julian.FromJulianDay(jdn))
}

// FromTime returns the LocalDate for the year, month and day of t in
// t's location. Use t.Local() to obtain the local wall clock date.
func FromTime(t time.Time) LocalDate {
	y, m, d := t.Date()
	return FromParts(y, int(m), d)
}

// Today returns the current date in the local time zone.
func Today() LocalDate {
	return FromTime(time.Now())
}

// Undefined returns a LocalDate none of whose fields are defined.
func Undefined() LocalDate {
	return newLocalDate(0, 0, 0, allUndefined)
}

// Clone returns a copy of d.
func (d LocalDate) Clone() LocalDate {
	return newLocalDate(d.year, d.month, d.day, d.undefined)
}

// Year returns the year, or 0 if it is undefined.
func (d LocalDate) Year() int {
	return d.year
}

// Month returns the month, or 0 if it is undefined.
func (d LocalDate) Month() int {
	return d.month
}

// Day returns the day of the month, or 0 if it is undefined.
func (d LocalDate) Day() int {
	return d.day
}

// Parts returns the year, month and day.
func (d LocalDate) Parts() (year, month, day int) {
	return d.year, d.month, d.day
}

// Defined returns true if all of the year, month and day are numbers.
func (d LocalDate) Defined() bool {
	return d.undefined == 0
}

// JulianDay returns the Julian Day Number for the date. It is computed
// from the year, month and day as given, whether valid or not, and is 0
// if any of them are undefined.
func (d LocalDate) JulianDay() int {
	return d.jdn
}

// Value is the same as JulianDay.
func (d LocalDate) Value() int {
	return d.jdn
}

// IsValid returns true if the date is a real calendar date, that is, the
// year is non-zero, the month is in the range 1-12 and the day is within
// the number of days in that month.
func (d LocalDate) IsValid() bool {
	if !d.Defined() || d.year == 0 {
		return false
	}
	if d.month < 1 || d.month > 12 {
		return false
	}
	return d.day >= 1 && d.day <= d.LengthOfMonth()
}

// IsLeapYear returns true if the date's year is a leap year.
func (d LocalDate) IsLeapYear() bool {
	return IsLeap(d.year)
}

// LengthOfMonth returns the number of days in the date's month.
func (d LocalDate) LengthOfMonth() int {
	return DaysInMonth(d.year, d.month)
}

// LengthOfYear returns the number of days in the date's year.
func (d LocalDate) LengthOfYear() int {
	return DaysInYear(d.year)
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for valid dates.
func (d LocalDate) DayOfYear() int {
	doy := d.day + daysBeforeMonth(d.month)
	if d.month > 2 && d.IsLeapYear() {
		doy++
	}
	return doy
}

// DayOfWeek returns the day of the week of the date as determined by
// time.Time, that is, the proleptic Gregorian calendar. Out of range
// months and days are normalized as per time.Date. It returns -1 if the
// date is not defined.
func (d LocalDate) DayOfWeek() time.Weekday {
	if !d.Defined() {
		return -1
	}
	return d.ToTime().Weekday()
}

// SetYear returns a new LocalDate with the year replaced.
func (d LocalDate) SetYear(year int) LocalDate {
	return newLocalDate(year, d.month, d.day, d.undefined&^yearUndefined)
}

// SetMonth returns a new LocalDate with the month replaced.
func (d LocalDate) SetMonth(month int) LocalDate {
	return newLocalDate(d.year, month, d.day, d.undefined&^monthUndefined)
}

// SetDay returns a new LocalDate with the day of the month replaced.
func (d LocalDate) SetDay(day int) LocalDate {
	return newLocalDate(d.year, d.month, day, d.undefined&^dayUndefined)
}

// Dater is implemented by types that can be converted to a LocalDate and
// hence compared with one.
type Dater interface {
	LocalDate() LocalDate
}

// LocalDate implements Dater.
func (d LocalDate) LocalDate() LocalDate {
	return d
}

// ISOString is a date in YYYY-MM-DD format, it implements Dater
// via FromISOString.
type ISOString string

// LocalDate implements Dater.
func (s ISOString) LocalDate() LocalDate {
	return FromISOString(string(s))
}

// JulianDay is a Julian Day Number, it implements Dater via FromJulianDay.
type JulianDay int

// LocalDate implements Dater.
func (j JulianDay) LocalDate() LocalDate {
	return FromJulianDay(int(j))
}

// Time is a time.Time, it implements Dater via FromTime.
type Time time.Time

// LocalDate implements Dater.
func (t Time) LocalDate() LocalDate {
	return FromTime(time.Time(t))
}

func asLocalDate(o Dater) LocalDate {
	if o == nil {
		return Today()
	}
	return o.LocalDate()
}

// Diff returns the number of days between d and other, negative if d
// is before other. A nil other is treated as today. The returned bool is
// false, and the difference meaningless, if either date is undefined.
func (d LocalDate) Diff(other Dater) (int, bool) {
	o := asLocalDate(other)
	if !d.Defined() || !o.Defined() {
		return 0, false
	}
	return d.jdn - o.jdn, true
}

// Equals returns true if d and other are the same day. It returns false
// if either date is undefined.
func (d LocalDate) Equals(other Dater) bool {
	diff, ok := d.Diff(other)
	return ok && diff == 0
}

// IsBefore returns true if d is before other. It returns false
// if either date is undefined.
func (d LocalDate) IsBefore(other Dater) bool {
	diff, ok := d.Diff(other)
	return ok && diff < 0
}

// IsAfter returns true if d is after other. It returns false
// if either date is undefined.
func (d LocalDate) IsAfter(other Dater) bool {
	diff, ok := d.Diff(other)
	return ok && diff > 0
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after other. It is intended for use with slices.SortFunc,
// undefined dates compare as if their Julian Day Number were 0.
func (d LocalDate) Compare(other LocalDate) int {
	return cmp.Compare(d.jdn, other.jdn)
}
