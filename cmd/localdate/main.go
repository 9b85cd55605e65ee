// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command localdate provides access to the date arithmetic, Julian Day
// and calendar queries of the localdate package from the command line.
//
// Dates may be given as YYYY-MM-DD, today or jd:<julian-day-number>.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type infoFlags struct {
	CommonFlags
}

type julianFlags struct {
	CommonFlags
}

type addFlags struct {
	CommonFlags
	Gap      bool `subcmd:"gap,false,'carry days that do not exist in the resulting month into the following month instead of clamping to its last day'"`
	Subtract bool `subcmd:"subtract,false,subtract the period rather than adding it"`
}

type diffFlags struct {
	CommonFlags
}

type todayFlags struct {
	CommonFlags
}

type app struct {
	out io.Writer
}

func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func newCommandSet(a *app) *subcmd.CommandSet {
	infoCmd := subcmd.NewCommand("info",
		subcmd.MustRegisterFlagStruct(&infoFlags{}, nil, nil),
		a.info, subcmd.AtLeastNArguments(1))
	infoCmd.Document(`display the Julian Day Number, day of the year, day of the week and validity of each date. Invalid dates, eg. 2003-02-29, are reported rather than rejected.`, "<date>...")

	jdCmd := subcmd.NewCommand("jd",
		subcmd.MustRegisterFlagStruct(&julianFlags{}, nil, nil),
		a.jd, subcmd.AtLeastNArguments(1))
	jdCmd.Document(`display the Julian Day Number of each date.`, "<date>...")

	fromJDCmd := subcmd.NewCommand("from-jd",
		subcmd.MustRegisterFlagStruct(&julianFlags{}, nil, nil),
		a.fromJD, subcmd.AtLeastNArguments(1))
	fromJDCmd.Document(`display the date for each Julian Day Number.`, "<julian-day-number>...")

	addCmd := subcmd.NewCommand("add",
		subcmd.MustRegisterFlagStruct(&addFlags{}, nil, nil),
		a.add, subcmd.ExactlyNumArguments(2))
	addCmd.Document(`add an ISO8601 period, eg. P1Y2M10D or -P3W, to a date.`, "<date>", "<period>")

	diffCmd := subcmd.NewCommand("diff",
		subcmd.MustRegisterFlagStruct(&diffFlags{}, nil, nil),
		a.diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document(`display the number of days from the second date to the first.`, "<date>", "<date>")

	todayCmd := subcmd.NewCommand("today",
		subcmd.MustRegisterFlagStruct(&todayFlags{}, nil, nil),
		a.today, subcmd.WithoutArguments())
	todayCmd.Document(`display today's date.`)

	cmdSet := subcmd.NewCommandSet(infoCmd, jdCmd, fromJDCmd, addCmd, diffCmd, todayCmd)
	cmdSet.Document(`perform calendar date arithmetic and Julian Day conversions.`)
	return cmdSet
}

func main() {
	cmdSet := newCommandSet(&app{out: os.Stdout})
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}
