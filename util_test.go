// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate_test

import (
	"fmt"
	"runtime"
	"testing"

	"cloudeng.io/localdate"
)

func newDate(year, month, day int) localdate.LocalDate {
	return localdate.FromParts(year, month, day)
}

func ymd(d localdate.LocalDate) string {
	y, m, dd := d.Parts()
	return fmt.Sprintf("%v-%v-%v", y, m, dd)
}

func expectDate(t *testing.T, got localdate.LocalDate, year, month, day int) {
	t.Helper()
	if !got.Defined() {
		t.Errorf("got undefined date %v, want %v-%v-%v", got, year, month, day)
		return
	}
	if y, m, d := got.Parts(); y != year || m != month || d != day {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: got %v, want %v-%v-%v", line, ymd(got), year, month, day)
	}
}

func mustDiff(t *testing.T, a localdate.LocalDate, b localdate.Dater) int {
	t.Helper()
	diff, ok := a.Diff(b)
	if !ok {
		t.Fatalf("%v, %v: diff should be defined", a, b)
	}
	return diff
}
