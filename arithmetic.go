// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import "math"

// Month and day arithmetic ignores the sign of its argument, so
// AddDays(-3) is the same as AddDays(3); use the Subtract methods to move
// backwards. Year arithmetic honours the sign. Any arithmetic on a date
// with undefined fields returns Undefined(). math.MinInt is treated as
// math.MaxInt.

func abs(n int) int {
	switch {
	case n == math.MinInt:
		return math.MaxInt
	case n < 0:
		return -n
	}
	return n
}

func clampDay(year, month, day int) int {
	return min(day, DaysInMonth(year, month))
}

// AddYears returns the date n years later. The day is clamped to the
// length of the resulting month, so Feb 29 becomes Feb 28 in a non-leap
// year.
func (d LocalDate) AddYears(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year := d.year + n
	return FromParts(year, d.month, clampDay(year, d.month, d.day))
}

// SubtractYears returns the date n years earlier, clamping the day as
// per AddYears.
func (d LocalDate) SubtractYears(n int) LocalDate {
	return d.AddYears(-n)
}

func (d LocalDate) addMonths(n int) (year, month int) {
	year, month, n = d.year, d.month, abs(n)
	if month >= 1 {
		year += n / 12
		n %= 12
	}
	month += n
	if month > 12 {
		carry := (month - 1) / 12
		month -= carry * 12
		year += carry
	}
	return
}

// AddMonths returns the date |n| months later. The day is clamped to the
// length of the resulting month.
func (d LocalDate) AddMonths(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year, month := d.addMonths(n)
	return FromParts(year, month, clampDay(year, month, d.day))
}

// SubtractMonths returns the date |n| months earlier. The day is clamped
// to the length of the resulting month.
func (d LocalDate) SubtractMonths(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year, month, n := d.year, d.month, abs(n)
	if month <= 12 {
		year -= n / 12
		n %= 12
	}
	month -= n
	if month < 1 {
		borrow := (12 - month) / 12
		month += borrow * 12
		year -= borrow
	}
	return FromParts(year, month, clampDay(year, month, d.day))
}

// AddDays returns the date |n| days later. The day is rolled forward
// a month at a time, so a date whose day exceeds the length of its month
// is normalized into the following month(s).
func (d LocalDate) AddDays(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year, month, day := d.year, d.month, d.day
	n = abs(n)
	if month >= 1 && month <= 12 {
		cycles := n / daysPer400Years
		n -= cycles * daysPer400Years
		year += cycles * 400
	}
	day += n
	if month >= 1 && month <= 12 && day > daysPer400Years {
		cycles := (day - 1) / daysPer400Years
		day -= cycles * daysPer400Years
		year += cycles * 400
	}
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return FromParts(year, month, day)
}

// SubtractDays returns the date |n| days earlier. Days below 1 borrow
// the length of the preceding month.
func (d LocalDate) SubtractDays(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year, month, day := d.year, d.month, d.day
	n = abs(n)
	if month >= 1 && month <= 12 {
		cycles := n / daysPer400Years
		n -= cycles * daysPer400Years
		year -= cycles * 400
	}
	day -= n
	if month >= 1 && month <= 12 && day <= -daysPer400Years {
		cycles := -day / daysPer400Years
		day += cycles * daysPer400Years
		year -= cycles * 400
	}
	for day < 1 {
		if month-1 < 1 {
			month = 13
			year--
		}
		day += DaysInMonth(year, month-1)
		month--
	}
	return FromParts(year, month, day)
}

// gap returns the number of days by which day exceeds the length of the
// given month.
func gap(year, month, day int) int {
	return max(0, day-DaysInMonth(year, month))
}

// AddYearsWithGap is like AddYears except that rather than clamping the
// day to the end of a shorter month it carries the excess into the
// following month, so Feb 29 plus one year is Mar 1.
func (d LocalDate) AddYearsWithGap(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year := d.year + n
	return d.AddYears(n).AddDays(gap(year, d.month, d.day))
}

// AddMonthsWithGap is like AddMonths except that rather than clamping the
// day to the end of a shorter month it carries the excess into the
// following month, so Jan 31 plus one month is Mar 3 in a non-leap year.
func (d LocalDate) AddMonthsWithGap(n int) LocalDate {
	if !d.Defined() {
		return Undefined()
	}
	year, month := d.addMonths(n)
	return d.AddMonths(n).AddDays(gap(year, month, d.day))
}
