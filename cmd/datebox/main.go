// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datebox formats, parses and performs week and period arithmetic
// on calendar dates using strftime style templates.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type CommonFlags struct {
	cmdutil.LoggingFlags
	Locale     string `subcmd:"locale,en-US,'BCP 47 locale used for weekday, month and meridiem names'"`
	LocaleFile string `subcmd:"locale-file,,'YAML file containing per-locale display names'"`
	Timezone   string `subcmd:"timezone,Local,'IANA time zone whose wall clock is used'"`
}

type formatFlags struct {
	CommonFlags
}

type parseFlags struct {
	CommonFlags
	Layout string `subcmd:"output,'%Y-%m-%d %H:%M:%S %T','template used to display parsed dates'"`
	JSON   bool   `subcmd:"json,false,'display each result, including failures, as a JSON object'"`
}

type weekFlags struct {
	CommonFlags
}

type shiftFlags struct {
	CommonFlags
	Layout string `subcmd:"output,'%Y-%m-%d %H:%M:%S','template used to display the shifted date'"`
}

type localesFlags struct {
	CommonFlags
}

func init() {
	formatCmd := subcmd.NewCommand("format",
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil),
		formatCommand)
	formatCmd.Document(`format the current time, or the supplied RFC 3339 time, using a template.`,
		"<template> [<rfc3339-time>]")

	parseCmd := subcmd.NewCommand("parse",
		subcmd.MustRegisterFlagStruct(&parseFlags{}, nil, nil),
		parseCommand)
	parseCmd.Document(`parse each input according to a template, all failures are reported.`,
		"<template> <input>...")

	weekCmd := subcmd.NewCommand("week",
		subcmd.MustRegisterFlagStruct(&weekFlags{}, nil, nil),
		weekCommand, subcmd.ExactlyNumArguments(1))
	weekCmd.Document(`display the Sunday, Monday and ISO-8601 week numbers of a date.`,
		"<yyyy-mm-dd>")

	shiftCmd := subcmd.NewCommand("shift",
		subcmd.MustRegisterFlagStruct(&shiftFlags{}, nil, nil),
		shiftCommand, subcmd.ExactlyNumArguments(2))
	shiftCmd.Document(`apply an ISO-8601 period, eg. P1M or -P1W2D, to a date.`,
		"<yyyy-mm-dd> <period>")

	localesCmd := subcmd.NewCommand("locales",
		subcmd.MustRegisterFlagStruct(&localesFlags{}, nil, nil),
		localesCommand, subcmd.ExactlyNumArguments(0))
	localesCmd.Document(`display the locale tables read from --locale-file as YAML.`)

	cmdSet = subcmd.NewCommandSet(formatCmd, parseCmd, weekCmd, shiftCmd, localesCmd)
	cmdSet.Document(`format, parse and perform arithmetic on calendar dates.

Templates consist of literal text and tokens of the form %<flags><code>,
eg. '%A, %d-%m-%Y %H:%M:%S'. The '-' flag suppresses zero padding.
Weekday, month and meridiem names are displayed and recognised using
the locale specified by --locale with names taken from --locale-file,
or from the English names built into Go.
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
