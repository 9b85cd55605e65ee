// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate_test

import (
	"errors"
	"flag"
	"io"
	"testing"

	"cloudeng.io/localdate"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val              string
		year, month, day int
	}{
		{"2005-04-10", 2005, 4, 10},
		{"-44-03-15", -44, 3, 15},
		{"+44-03-15", 44, 3, 15},
		{"0005-04-10", 5, 4, 10},
		{"jd:2453471", 2005, 4, 10},
		{"jd:2421909", 1918, 11, 11},
	} {
		d, err := localdate.Parse(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		expectDate(t, d, tc.year, tc.month, tc.day)
	}

	// String output for valid dates can always be parsed.
	for _, d := range []localdate.LocalDate{
		newDate(5, 4, 10), newDate(-44, 3, 15), newDate(2024, 2, 29),
	} {
		p, err := localdate.Parse(d.String())
		if err != nil {
			t.Errorf("failed: %v: %v", d, err)
			continue
		}
		if got, want := p, d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{
		"",
		"2005-4-10",
		"2005-04-10x",
		"2005/04/10",
		"2003-02-29",
		"0000-01-01",
		"2005-13-01",
		"jd:",
		"jd:x",
		"yesterday",
	} {
		_, err := localdate.Parse(tc)
		if err == nil || !errors.Is(err, localdate.ErrInvalidDate) {
			t.Errorf("%q: missing or wrong error: %v", tc, err)
		}
	}

	today, err := localdate.Parse("today")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := today, localdate.Today(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlag(t *testing.T) {
	var from, to localdate.Flag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&from, "from", "start date")
	fs.Var(&to, "to", "end date")

	if err := fs.Parse([]string{"--from=2000-02-29"}); err != nil {
		t.Fatal(err)
	}
	if got, want := from.Date(), newDate(2000, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := from.Get().(localdate.LocalDate), newDate(2000, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := from.String(), "2000-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if from.IsDefault() {
		t.Errorf("from should be set")
	}
	if !to.IsDefault() {
		t.Errorf("to should not be set")
	}
	if to.Date().Defined() {
		t.Errorf("unset flag should be undefined: %v", to.Date())
	}

	if err := fs.Parse([]string{"--to=2001-02-29"}); err == nil {
		t.Errorf("expected an error")
	}
	if err := fs.Parse([]string{"--to=jd:2421909"}); err != nil {
		t.Fatal(err)
	}
	if got, want := to.Date(), newDate(1918, 11, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
