// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidDate is returned, wrapped, by functions that parse dates and
// must reject those that are not valid.
var ErrInvalidDate = errors.New("invalid date")

// parseLeadingInt parses the decimal integer, with an optional sign, at the
// start of s ignoring any leading white space and anything following
// the digits. It returns false if there are no such digits.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func fromStrings(parts []string) LocalDate {
	var fields [3]int
	var undefined fieldMask
	for i := range fields {
		if i >= len(parts) {
			undefined |= 1 << i
			continue
		}
		n, ok := parseLeadingInt(parts[i])
		if !ok {
			undefined |= 1 << i
			continue
		}
		fields[i] = n
	}
	return newLocalDate(fields[0], fields[1], fields[2], undefined)
}

// ParseParts returns the LocalDate for the given year, month and day
// strings. Each is parsed as the decimal integer it starts with, trailing
// non-numeric content is ignored. A string that does not start with a
// number results in the corresponding field being undefined.
func ParseParts(year, month, day string) LocalDate {
	return fromStrings([]string{year, month, day})
}

// FromISOString returns the LocalDate for a date in YYYY-MM-DD format.
// The string is split on '-' and the first three components are parsed
// as per ParseParts; missing components are undefined. Since '-' is the
// separator, negative years cannot be represented. An empty string
// returns today's date.
func FromISOString(s string) LocalDate {
	if len(s) == 0 {
		return Today()
	}
	return fromStrings(strings.SplitN(s, "-", 4))
}

var isoDateRe = regexp.MustCompile(`^([-+]?[0-9]+)-([0-9]{2})-([0-9]{2})$`)

// Parse parses a date in one of the following formats, returning an error
// that wraps ErrInvalidDate if the date is malformed or not valid:
//
//	YYYY-MM-DD   with an optional leading sign for the year
//	today        the current date
//	jd:<n>       the Julian Day Number n
//
// Unlike FromISOString, Parse is strict and accepts the output of
// LocalDate.String for any valid date, including those with negative years.
func Parse(val string) (LocalDate, error) {
	switch {
	case val == "today":
		return Today(), nil
	case strings.HasPrefix(val, "jd:"):
		n, err := strconv.Atoi(val[3:])
		if err != nil {
			return LocalDate{}, fmt.Errorf("invalid julian day %q: %w", val, ErrInvalidDate)
		}
		return FromJulianDay(n), nil
	}
	m := isoDateRe.FindStringSubmatch(val)
	if m == nil {
		return LocalDate{}, fmt.Errorf("%q is not in YYYY-MM-DD format: %w", val, ErrInvalidDate)
	}
	d := ParseParts(m[1], m[2], m[3])
	if !d.IsValid() {
		return LocalDate{}, fmt.Errorf("%q is not a calendar date: %w", val, ErrInvalidDate)
	}
	return d, nil
}
