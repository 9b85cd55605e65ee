// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/localdate"
	"cloudeng.io/logging/ctxlog"
)

// parseDates parses all of the supplied arguments and returns all
// of the errors encountered rather than just the first.
func parseDates(args []string) ([]localdate.LocalDate, error) {
	errs := &errors.M{}
	dates := make([]localdate.LocalDate, 0, len(args))
	for _, arg := range args {
		d, err := localdate.Parse(arg)
		errs.Append(err)
		dates = append(dates, d)
	}
	return dates, errs.Err()
}

// parseLenient accepts dates that are syntactically correct but
// do not exist, eg. 2003-02-29.
func parseLenient(arg string) (localdate.LocalDate, error) {
	d, err := localdate.Parse(arg)
	if err == nil {
		return d, nil
	}
	if d = localdate.FromISOString(arg); d.Defined() {
		return d, nil
	}
	return d, err
}

func (a *app) info(ctx context.Context, values any, args []string) error {
	fv := values.(*infoFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, arg := range args {
		d, err := parseLenient(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		if !d.IsValid() {
			ctxlog.Logger(ctx).Warn("not a calendar date", "arg", arg, "date", d.String())
		}
		fmt.Fprintf(a.out, "%v: jd=%v day-of-year=%v weekday=%v leap-year=%v days-in-month=%v valid=%v\n",
			d, d.JulianDay(), d.DayOfYear(), d.DayOfWeek(), d.IsLeapYear(), d.LengthOfMonth(), d.IsValid())
	}
	return errs.Err()
}

func (a *app) jd(ctx context.Context, values any, args []string) error {
	fv := values.(*julianFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	dates, err := parseDates(args)
	if err != nil {
		return err
	}
	for i, d := range dates {
		ctxlog.Logger(ctx).Debug("julian day", "arg", args[i], "jd", d.JulianDay())
		fmt.Fprintf(a.out, "%v\t%v\n", d, d.JulianDay())
	}
	return nil
}

func (a *app) fromJD(ctx context.Context, values any, args []string) error {
	fv := values.(*julianFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	dates := make([]localdate.LocalDate, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid julian day %q: %w", arg, localdate.ErrInvalidDate))
			continue
		}
		dates = append(dates, localdate.FromJulianDay(n))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	for _, d := range dates {
		ctxlog.Logger(ctx).Debug("from julian day", "jd", d.JulianDay(), "date", d.String())
		fmt.Fprintf(a.out, "%v\t%v\n", d.JulianDay(), d)
	}
	return nil
}

func (a *app) add(ctx context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	d, err := localdate.Parse(args[0])
	errs.Append(err)
	p, err := localdate.ParsePeriod(args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	if fv.Subtract {
		p.Negative = !p.Negative
	}
	var r localdate.LocalDate
	if fv.Gap {
		r = d.AddPeriodWithGap(p)
	} else {
		r = d.AddPeriod(p)
	}
	ctxlog.Logger(ctx).Debug("add", "date", d.String(), "period", p.String(), "gap", fv.Gap, "result", r.String())
	fmt.Fprintln(a.out, r)
	return nil
}

func (a *app) diff(ctx context.Context, values any, args []string) error {
	fv := values.(*diffFlags)
	_, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	dates, err := parseDates(args)
	if err != nil {
		return err
	}
	diff, ok := dates[0].Diff(dates[1])
	if !ok {
		return fmt.Errorf("%v, %v: %w", dates[0], dates[1], localdate.ErrInvalidDate)
	}
	fmt.Fprintln(a.out, diff)
	return nil
}

func (a *app) today(ctx context.Context, values any, _ []string) error {
	fv := values.(*todayFlags)
	_, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintln(a.out, localdate.Today())
	return nil
}
