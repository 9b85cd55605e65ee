// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate_test

import (
	"errors"
	"testing"

	"cloudeng.io/localdate"
)

func TestParsePeriod(t *testing.T) {
	for _, tc := range []struct {
		val    string
		period localdate.Period
		str    string
	}{
		{"P1Y", localdate.Period{Years: 1}, "P1Y"},
		{"P1Y2M10D", localdate.Period{Years: 1, Months: 2, Days: 10}, "P1Y2M10D"},
		{"-P3W", localdate.Period{Negative: true, Weeks: 3}, "-P3W"},
		{"P0D", localdate.Period{}, "P0D"},
		{"P18M", localdate.Period{Months: 18}, "P18M"},
		{"P1W1D", localdate.Period{Weeks: 1, Days: 1}, "P1W1D"},
		{"P0Y12M", localdate.Period{Months: 12}, "P12M"},
	} {
		p, err := localdate.ParsePeriod(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := p, tc.period; got != want {
			t.Errorf("%v: got %+v, want %+v", tc.val, got, want)
		}
		if got, want := p.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{
		"",
		"1Y",
		"P",
		"-P",
		"P1",
		"PY",
		"P1.5D",
		"P-1D",
		"P1D1Y",
		"P1Y1Y",
		"PT1H",
		"P1H",
		"P1X",
	} {
		_, err := localdate.ParsePeriod(tc)
		if err == nil || !errors.Is(err, localdate.ErrInvalidPeriod) {
			t.Errorf("%q: missing or wrong error: %v", tc, err)
		}
	}
}

func TestAddPeriod(t *testing.T) {
	mustParse := func(val string) localdate.Period {
		p, err := localdate.ParsePeriod(val)
		if err != nil {
			t.Fatalf("%v: %v", val, err)
		}
		return p
	}
	nd := newDate
	for _, tc := range []struct {
		date             localdate.LocalDate
		period           string
		gap              bool
		year, month, day int
	}{
		{nd(2000, 2, 29), "P1Y1M1D", false, 2001, 3, 29},
		{nd(2000, 2, 29), "P1Y1M1D", true, 2001, 4, 2},
		{nd(2000, 3, 31), "-P1Y1M1D", false, 1999, 2, 27},
		{nd(2000, 3, 31), "-P1Y1M1D", true, 1999, 2, 27},
		{nd(2015, 1, 31), "P2W", false, 2015, 2, 14},
		{nd(2015, 1, 31), "P1M", false, 2015, 2, 28},
		{nd(2015, 1, 31), "P1M", true, 2015, 3, 3},
		{nd(2015, 1, 31), "P0D", true, 2015, 1, 31},
	} {
		p := mustParse(tc.period)
		var got localdate.LocalDate
		if tc.gap {
			got = tc.date.AddPeriodWithGap(p)
		} else {
			got = tc.date.AddPeriod(p)
		}
		expectDate(t, got, tc.year, tc.month, tc.day)
	}
}
