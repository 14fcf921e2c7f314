// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datebox"
)

func testEnv(t *testing.T, cf CommonFlags) (context.Context, *env, *bytes.Buffer) {
	t.Helper()
	if len(cf.Locale) == 0 {
		cf.Locale = "en-US"
	}
	if len(cf.Timezone) == 0 {
		cf.Timezone = "UTC"
	}
	out := &bytes.Buffer{}
	ctx, e, err := newEnv(context.Background(), cf, out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { e.Close() })
	return ctx, e, out
}

func TestEnv(t *testing.T) {
	_, _, err := newEnv(context.Background(), CommonFlags{
		LoggingFlags: cmdutil.LoggingFlags{Format: "xml"},
		Locale:       "!!",
		Timezone:     "Mars/Olympus_Mons",
		LocaleFile:   "testdata/missing.yaml",
	}, io.Discard)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, flag := range []string{"logging: unknown log format", "--locale=", "--timezone=", "--locale-file="} {
		if !strings.Contains(err.Error(), flag) {
			t.Errorf("%v does not mention %v", err, flag)
		}
	}

	_, e, _ := testEnv(t, CommonFlags{Locale: "fr-CA", LocaleFile: "testdata/locales.yaml"})
	if got, want := e.tables.Names(e.tag, "daysOfWeek")[0], "dimanche"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "datebox.log")
	_, e, err := newEnv(context.Background(), CommonFlags{
		LoggingFlags: cmdutil.LoggingFlags{Level: 3, File: logFile, Format: "json"},
		Locale:       "fr",
		Timezone:     "UTC",
		LocaleFile:   "testdata/locales.yaml",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	logs, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"configured"`, `"msg":"using locale table"`, `"matched":"fr"`} {
		if !strings.Contains(string(logs), want) {
			t.Errorf("%s does not contain %v", logs, want)
		}
	}

	// Debug messages are suppressed at the default level.
	logFile = filepath.Join(t.TempDir(), "quiet.log")
	_, e, err = newEnv(context.Background(), CommonFlags{
		LoggingFlags: cmdutil.LoggingFlags{File: logFile, Format: "json"},
		Locale:       "en-US",
		Timezone:     "UTC",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	e.Close()
	logs, err = os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(logs), 0; got != want {
		t.Errorf("got %v, want %v: %s", got, want, logs)
	}
}

func TestFormatCommand(t *testing.T) {
	ctx, e, out := testEnv(t, CommonFlags{})
	if err := runFormat(ctx, e, []string{"%A, %d-%M-%Y %H:%i:%S", "2001-01-01T12:01:00Z"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "Monday, 01-01-2001 12:01:00\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ctx, e, out = testEnv(t, CommonFlags{Locale: "fr", LocaleFile: "testdata/locales.yaml", Timezone: "Europe/Paris"})
	if err := runFormat(ctx, e, []string{"%A %-d %B %H:%M %p", "2001-02-05T17:00:00Z"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "lundi 5 février 18:00 soir\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := runFormat(ctx, e, []string{"%Y"}); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{nil, {"%Y", "2001-01-01", "extra"}, {"%Y", "not a time"}} {
		if err := runFormat(ctx, e, args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestParseCommand(t *testing.T) {
	ctx, e, out := testEnv(t, CommonFlags{})
	err := runParse(ctx, e, "%Y-%m-%d %H:%M:%S %T", false, []string{"%d/%m/%Y", "03/01/2001", "bad", "31/02/2001", "25/12/2017"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, datebox.ErrParse) {
		t.Errorf("unexpected error: %v", err)
	}
	if got, want := strings.Count(err.Error(), "date does not match template"), 2; got != want {
		t.Errorf("got %v, want %v: %v", got, want, err)
	}
	want := "2001-01-03 08:00:00 +00\t2001-01-03T08:00:00.000Z\n" +
		"2017-12-25 08:00:00 +00\t2017-12-25T08:00:00.000Z\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := runParse(ctx, e, "", false, []string{"%Y"}); err == nil {
		t.Errorf("expected an error")
	}

	ctx, e, out = testEnv(t, CommonFlags{})
	err = runParse(ctx, e, "%Y-%m-%d", true, []string{"%d/%m/%Y", "31/12/2024", "03/01/2021", "bad"})
	if !errors.Is(err, datebox.ErrParse) {
		t.Errorf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("got %v, want %v: %v", got, want, out.String())
	}
	for i, want := range []string{
		`{"input":"31/12/2024","time":"2024-12-31T08:00:00.000Z","local":"2024-12-31","isoWeek":"2025-W01-2"}`,
		`{"input":"03/01/2021","time":"2021-01-03T08:00:00.000Z","local":"2021-01-03","isoWeek":"2020-W53-7"}`,
	} {
		if got := lines[i]; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if !strings.HasPrefix(lines[2], `{"input":"bad","error":"`) {
		t.Errorf("unexpected output: %v", lines[2])
	}
}

func TestWeekCommand(t *testing.T) {
	ctx, e, out := testEnv(t, CommonFlags{})
	if err := runWeek(ctx, e, "2024-12-31"); err != nil {
		t.Fatal(err)
	}
	want := `2024-12-31 Tuesday
  week (Sunday first): 52
  week (Monday first): 53
  ISO week: 2025-W01-2
  day of year: 366 of 366
  days since epoch: 20,088
`
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	out.Reset()
	if err := runWeek(ctx, e, "2021-01-03"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ISO week: 2020-W53-7\n") {
		t.Errorf("unexpected output: %v", out.String())
	}
	if err := runWeek(ctx, e, "2024-13-01"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestShiftCommand(t *testing.T) {
	ctx, e, out := testEnv(t, CommonFlags{})
	if err := runShift(ctx, e, "%Y-%m-%d", "2001-01-31", "P1M"); err != nil {
		t.Fatal(err)
	}
	if err := runShift(ctx, e, "%Y-%m-%d %H:%M", "2001-03-01", "-P1DT8H"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2001-03-03\n2001-02-28 00:00\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err := runShift(ctx, e, "%Y", "yesterday", "P1X")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, datebox.ErrParse) || !errors.Is(err, datebox.ErrInvalidPeriod) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLocalesCommand(t *testing.T) {
	ctx, e, out := testEnv(t, CommonFlags{})
	if err := runLocales(ctx, e); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "locales: []\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ctx, e, out = testEnv(t, CommonFlags{LocaleFile: "testdata/locales.yaml"})
	if err := runLocales(ctx, e); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"- tag: fr", "meridiem: [matin, soir]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%v does not contain %v", out.String(), want)
		}
	}
}
