// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import (
	"cloudeng.io/datetime"
)

// FromCalendarDate returns the LocalDate for the specified
// datetime.CalendarDate.
func FromCalendarDate(cd datetime.CalendarDate) LocalDate {
	return FromParts(cd.Year(), int(cd.Month()), cd.Day())
}

// CalendarDate returns the datetime.CalendarDate for d. Undefined fields
// are returned as zero.
func (d LocalDate) CalendarDate() datetime.CalendarDate {
	return datetime.NewCalendarDate(d.year, datetime.Month(d.month), d.day)
}

// CalendarDate is a Dater for datetime.CalendarDate.
type CalendarDate datetime.CalendarDate

// LocalDate implements Dater.
func (cd CalendarDate) LocalDate() LocalDate {
	return FromCalendarDate(datetime.CalendarDate(cd))
}
