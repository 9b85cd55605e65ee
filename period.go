// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPeriod = errors.New("invalid ISO8601 period")

// Period represents the date portion of an ISO8601 duration, ie.
// [-]PnYnMnWnD. The counts are never negative, Negative indicates
// that the period is to be subtracted.
type Period struct {
	Negative bool
	Years    int
	Months   int
	Weeks    int
	Days     int
}

const periodDesignators = "YMWD"

func consumeInt(per string) (int, byte, int, error) {
	for i := range per {
		c := per[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == 'T' || c == 'H' || c == 'S' {
			return 0, 0, 0, fmt.Errorf("time designators are not supported: %q: %w", per, ErrInvalidPeriod)
		}
		if i == 0 {
			return 0, 0, 0, fmt.Errorf("missing number before %q: %q: %w", c, per, ErrInvalidPeriod)
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(per[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", per[:i], per, ErrInvalidPeriod)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %q: %w", per, ErrInvalidPeriod)
}

// ParsePeriod parses a period in the ISO8601 format [-]PnYnMnWnD. The
// designators must appear in that order and at least one must be present.
func ParsePeriod(per string) (Period, error) {
	var p Period
	orig := per
	hasP, hasNP := strings.HasPrefix(per, "P"), strings.HasPrefix(per, "-P")
	if !hasP && !hasNP {
		return p, fmt.Errorf("period must start with P or -P: %q: %w", orig, ErrInvalidPeriod)
	}
	if hasNP {
		p.Negative = true
		per = per[2:]
	} else {
		per = per[1:]
	}
	if len(per) == 0 {
		return p, fmt.Errorf("empty period: %q: %w", orig, ErrInvalidPeriod)
	}
	next := 0
	for len(per) > 0 {
		n, designator, idx, err := consumeInt(per)
		if err != nil {
			return Period{}, err
		}
		per = per[idx:]
		pos := strings.IndexByte(periodDesignators, designator)
		if pos < next {
			return Period{}, fmt.Errorf("designator %c is repeated or out of order: %q: %w", designator, orig, ErrInvalidPeriod)
		}
		next = pos + 1
		switch designator {
		case 'Y':
			p.Years = n
		case 'M':
			p.Months = n
		case 'W':
			p.Weeks = n
		case 'D':
			p.Days = n
		}
	}
	return p, nil
}

// String returns the period in ISO8601 format, omitting zero counts.
// An empty period is formatted as P0D.
func (p Period) String() string {
	var out strings.Builder
	if p.Negative {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	empty := true
	for i, n := range []int{p.Years, p.Months, p.Weeks, p.Days} {
		if n == 0 {
			continue
		}
		out.WriteString(strconv.Itoa(n))
		out.WriteByte(periodDesignators[i])
		empty = false
	}
	if empty {
		out.WriteString("0D")
	}
	return out.String()
}

func (p Period) days() int {
	return p.Weeks*7 + p.Days
}

// AddPeriod returns the date obtained by applying the years, then the
// months and then the weeks and days of p to d, subtracting them if p
// is negative. Days are clamped as per AddYears and AddMonths.
func (d LocalDate) AddPeriod(p Period) LocalDate {
	if p.Negative {
		return d.SubtractYears(p.Years).SubtractMonths(p.Months).SubtractDays(p.days())
	}
	return d.AddYears(p.Years).AddMonths(p.Months).AddDays(p.days())
}

// AddPeriodWithGap is like AddPeriod but uses AddYearsWithGap and
// AddMonthsWithGap for positive periods. Negative periods are applied as
// per AddPeriod.
func (d LocalDate) AddPeriodWithGap(p Period) LocalDate {
	if p.Negative {
		return d.AddPeriod(p)
	}
	return d.AddYearsWithGap(p.Years).AddMonthsWithGap(p.Months).AddDays(p.days())
}
