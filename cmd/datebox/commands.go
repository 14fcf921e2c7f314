// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datebox"
	"cloudeng.io/datebox/locale"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-json-experiment/json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dateTemplate is used for the date arguments of the week and shift commands.
const dateTemplate = "%Y-%m-%d"

// env is the configuration shared by all commands.
type env struct {
	tag    language.Tag
	loc    *time.Location
	tables *locale.Tables
	logger *cmdutil.Logger
	out    io.Writer
}

func (e *env) options() []datebox.Option {
	return []datebox.Option{
		datebox.WithLocale(e.tag),
		datebox.WithLocaleSource(e.tables),
		datebox.WithLocation(e.loc),
	}
}

// Close closes the log file, if any.
func (e *env) Close() error {
	return e.logger.Close()
}

// newEnv installs the logger configured by the logging flags in the
// returned context and validates all of the common flags, reporting
// every invalid flag.
func newEnv(ctx context.Context, cf CommonFlags, out io.Writer) (context.Context, *env, error) {
	e := &env{out: out}
	errs := &errors.M{}
	var err error
	if e.logger, err = cf.LoggingConfig().NewLogger(); err != nil {
		errs.Append(fmt.Errorf("logging: %w", err))
	}
	if e.tag, err = language.Parse(cf.Locale); err != nil {
		errs.Append(fmt.Errorf("--locale=%v: %w", cf.Locale, err))
	}
	if e.loc, err = time.LoadLocation(cf.Timezone); err != nil {
		errs.Append(fmt.Errorf("--timezone=%v: %w", cf.Timezone, err))
	}
	if len(cf.LocaleFile) > 0 {
		if e.tables, err = locale.LoadTables(ctx, cf.LocaleFile, nil); err != nil {
			errs.Append(fmt.Errorf("--locale-file=%v: %w", cf.LocaleFile, err))
		}
	} else {
		e.tables = locale.NewTables(nil)
	}
	if err := errs.Err(); err != nil {
		if e.logger != nil {
			e.logger.Close()
		}
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, e.logger.Logger)
	logger := ctxlog.Logger(ctx)
	logger.Debug("configured", "locale", e.tag.String(), "timezone", e.loc.String(), "tables", len(e.tables.Tags()))
	if tag, _, ok := e.tables.Match(e.tag); ok {
		logger.Info("using locale table", "requested", e.tag.String(), "matched", tag.String())
	}
	return ctx, e, nil
}

// isoWeekDate returns v as an ISO-8601 week date, eg. 2020-W53-7.
func isoWeekDate(v *datebox.Value) string {
	return fmt.Sprintf("%d-W%s-%d", v.ISOYear(), v.Format("%V"), (v.Weekday()+6)%7+1)
}

func formatCommand(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*formatFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()
	return runFormat(ctx, e, args)
}

func runFormat(ctx context.Context, e *env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("format: expected a template and an optional time, got %v arguments", len(args))
	}
	v := datebox.Now(e.options()...)
	if len(args) == 2 {
		var err error
		if v, err = datebox.Parse(args[1], "%J", e.options()...); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Debug("format", "template", args[0], "time", v.JSON())
	fmt.Fprintln(e.out, v.Format(args[0]))
	return nil
}

func parseCommand(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*parseFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()
	return runParse(ctx, e, fv.Layout, fv.JSON, args)
}

// parseResult is the JSON representation of a single parsed input.
type parseResult struct {
	Input   string `json:"input"`
	Time    string `json:"time,omitempty"`
	Local   string `json:"local,omitempty"`
	ISOWeek string `json:"isoWeek,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (e *env) writeJSON(v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.out, "%s\n", buf)
	return err
}

func runParse(ctx context.Context, e *env, layout string, asJSON bool, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("parse: expected a template and at least one input, got %v arguments", len(args))
	}
	logger := ctxlog.Logger(ctx)
	template := args[0]
	errs := &errors.M{}
	for _, input := range args[1:] {
		v, err := datebox.Parse(input, template, e.options()...)
		if err != nil {
			logger.Warn("parse", "input", input, "template", template, "error", err)
			errs.Append(err)
			if asJSON {
				errs.Append(e.writeJSON(parseResult{Input: input, Error: err.Error()}))
			}
			continue
		}
		if asJSON {
			errs.Append(e.writeJSON(parseResult{
				Input:   input,
				Time:    v.JSON(),
				Local:   v.Format(layout),
				ISOWeek: isoWeekDate(v),
			}))
			continue
		}
		fmt.Fprintf(e.out, "%s\t%s\n", v.Format(layout), v.JSON())
	}
	return errs.Err()
}

func weekCommand(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*weekFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()
	return runWeek(ctx, e, args[0])
}

func runWeek(_ context.Context, e *env, date string) error {
	v, err := datebox.Parse(date, dateTemplate, e.options()...)
	if err != nil {
		return err
	}
	p := message.NewPrinter(e.tag)
	p.Fprintf(e.out, "%s %s\n", v.ISO(), v.WeekdayName(false))
	p.Fprintf(e.out, "  week (Sunday first): %d\n", v.Week(datebox.SundayFirst))
	p.Fprintf(e.out, "  week (Monday first): %d\n", v.Week(datebox.MondayFirst))
	p.Fprintf(e.out, "  ISO week: %s\n", isoWeekDate(v))
	p.Fprintf(e.out, "  day of year: %d of %d\n", v.YearDay(), datebox.DaysInYear(v.Year()))
	p.Fprintf(e.out, "  days since epoch: %d\n", v.EpochDays())
	return nil
}

func shiftCommand(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*shiftFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()
	return runShift(ctx, e, fv.Layout, args[0], args[1])
}

func runShift(ctx context.Context, e *env, layout, date, period string) error {
	errs := &errors.M{}
	v, err := datebox.Parse(date, dateTemplate, e.options()...)
	errs.Append(err)
	adj, err := datebox.ParsePeriod(period)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	shifted := v.Shift(adj)
	ctxlog.Logger(ctx).Debug("shift", "from", v.JSON(), "period", adj.String(), "to", shifted.JSON())
	fmt.Fprintln(e.out, shifted.Format(layout))
	return nil
}

func localesCommand(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*localesFlags)
	ctx, e, err := newEnv(ctx, fv.CommonFlags, os.Stdout)
	if err != nil {
		return err
	}
	defer e.Close()
	return runLocales(ctx, e)
}

func runLocales(_ context.Context, e *env) error {
	out, err := e.tables.YAML()
	if err != nil {
		return err
	}
	_, err = e.out.Write(out)
	return err
}
