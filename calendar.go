// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import (
	"cloudeng.io/datetime"
)

// daysBefore[m] is the number of days in a non-leap year preceding month m+1,
// with daysBefore[12] being the length of the year.
var daysBefore [13]int

// daysPer400Years is the number of days in a 400 year Gregorian cycle.
const daysPer400Years = 146097

func init() {
	for m := 1; m <= 12; m++ {
		daysBefore[m] = daysBefore[m-1] + int(datetime.DaysInMonth(2023, datetime.Month(m)))
	}
}

// IsLeap returns true if the given year is a leap year under the Gregorian
// rule, which is applied to all years including those before 1582.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return int(datetime.DaysInFeb(year))
}

// DaysInMonth returns the number of days in the given month for the given
// year, or 0 if month is not in the range 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// daysBeforeMonth returns the number of days in a non-leap year that precede
// the first day of month. Months past December count the entire year and
// months before January count nothing.
func daysBeforeMonth(month int) int {
	return daysBefore[min(max(month, 1), 13)-1]
}
