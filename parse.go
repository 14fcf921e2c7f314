// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datebox/locale"
	"cloudeng.io/errors"
)

var (
	// TwoDigitYearPivot determines the century of two digit years
	// (%y, %g): values at or above the pivot are in the 1900s, those
	// below it in the 2000s.
	TwoDigitYearPivot = 50

	// UntimedHour is the hour used for parsed dates that do not
	// specify one.
	UntimedHour = 8
)

// ErrParse is returned, wrapped, for all parse failures.
var ErrParse = errors.New("date does not match template")

// parseTokenRE matches the tokens recognised by the parser, codes
// are letters only.
var parseTokenRE = regexp.MustCompile(`%([0-]*)([A-Za-z])`)

// pattern is a template compiled into a regular expression with one
// capture group per bound field code.
type pattern struct {
	re    *regexp.Regexp
	codes []byte
}

// captureShape returns the regular expression used to capture the
// value for code, or false if code is not bound to a field. The '0' and
// '-' flags allow numeric fields to omit leading zeros. Day of year
// accepts two or three digits since Format pads only values below 10.
func captureShape(code byte, flags string) (string, bool) {
	loose := strings.ContainsAny(flags, "0-")
	switch code {
	case 'a', 'A', 'b', 'B', 'p', 'P':
		return ".+?", true
	case 'd', 'H', 'k', 'I', 'l', 'm', 'M', 'i', 'S', 'u', 'U', 'V', 'w', 'W', 'g', 'y':
		if loose {
			return "[0-9]{1,2}", true
		}
		return "[0-9]{2}", true
	case 'j':
		if loose {
			return "[0-9]{1,3}", true
		}
		return "[0-9]{2,3}", true
	case 's':
		return "[0-9]+", true
	case 'E', 'G', 'Y':
		return "[0-9]{1,4}", true
	}
	return "", false
}

func compileTemplate(template string) (*pattern, error) {
	var (
		expr  strings.Builder
		codes []byte
		last  int
	)
	expr.WriteString("^")
	for _, m := range parseTokenRE.FindAllStringSubmatchIndex(template, -1) {
		expr.WriteString(regexp.QuoteMeta(template[last:m[0]]))
		last = m[1]
		token, flags, code := template[m[0]:m[1]], template[m[2]:m[3]], template[m[4]]
		shape, ok := captureShape(code, flags)
		if !ok {
			expr.WriteString(".+?")
			continue
		}
		codes = append(codes, code)
		fmt.Fprintf(&expr, "(%s|%s)", regexp.QuoteMeta(token), shape)
	}
	expr.WriteString(regexp.QuoteMeta(template[last:]))
	expr.WriteString("$")
	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, err
	}
	return &pattern{re: re, codes: codes}, nil
}

// match returns the captured value for each bound code.
func (p *pattern) match(input, template string) ([]string, bool) {
	in := p.re.FindStringSubmatch(input)
	if in == nil {
		return nil, false
	}
	// The template must be matched by its own pattern with the same
	// number of captures.
	if self := p.re.FindStringSubmatch(template); len(self) != len(in) {
		return nil, false
	}
	return in[1:], true
}

type optInt struct {
	val int
	ok  bool
}

func (o *optInt) set(v int) {
	o.val, o.ok = v, true
}

func (o optInt) or(def int) int {
	if o.ok {
		return o.val
	}
	return def
}

const (
	am = -1
	pm = 1
)

// captured contains the field values extracted from an input string.
type captured struct {
	year, month, day     optInt // month is 0-based
	hour, minute, second optInt
	yearDay              optInt
	meridiem             int
	week                 optInt
	convention           WeekConvention
	weekday              optInt
}

func parseFailure(input, template, format string, args ...any) error {
	return fmt.Errorf("%q, %q: %s: %w", input, template, fmt.Sprintf(format, args...), ErrParse)
}

// Parse parses input according to template and returns the resulting
// Value. Options set the locale used to recognise names and the location
// of the wall clock that the parsed fields refer to.
//
// A template consisting solely of %J is parsed as an RFC 3339 timestamp.
// Tokens with unknown codes match any text which is then ignored.
// Two digit years are resolved using TwoDigitYearPivot, %E years are
// converted from the Buddhist era, and %p or %P adjusts the hour for 12
// hour clocks. A %s capture determines the instant on its own. If the
// year, month and day are all captured and form a valid date they are
// used with any captured time of day, or UntimedHour. Otherwise a day
// of the year (%j) or a week number (%U, %V, %W) with an optional
// weekday determines the date. Dates that do not exist, such as
// February 31, are reported as errors that wrap ErrParse.
func Parse(input, template string, opts ...Option) (*Value, error) {
	return parse(input, template, newOptions(opts))
}

// Parse is like the package level Parse but uses the locale, locale
// source and location of v unless overridden by opts. v is not modified.
func (v *Value) Parse(input, template string, opts ...Option) (*Value, error) {
	return parse(input, template, v.with(opts))
}

func parse(input, template string, o options) (*Value, error) {
	if template == "%J" {
		return parseInstant(input, o)
	}
	p, err := compileTemplate(template)
	if err != nil {
		return nil, parseFailure(input, template, "invalid template: %v", err)
	}
	values, ok := p.match(input, template)
	if !ok {
		return nil, parseFailure(input, template, "no match")
	}
	for i, code := range p.codes {
		if code != 's' {
			continue
		}
		sec, err := strconv.ParseInt(values[i], 10, 64)
		if err != nil {
			return nil, parseFailure(input, template, "invalid epoch seconds %q", values[i])
		}
		return newValue(time.Unix(sec, 0), o), nil
	}
	var c captured
	for i, code := range p.codes {
		if err := c.bind(code, values[i], o); err != nil {
			return nil, parseFailure(input, template, "%%%c: %v", code, err)
		}
	}
	v, err := c.resolve(o)
	if err != nil {
		return nil, parseFailure(input, template, "%v", err)
	}
	return v, nil
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseInstant parses an RFC 3339 timestamp. Timestamps without a zone
// are in the parse location, and a date on its own is midnight UTC.
func parseInstant(input string, o options) (*Value, error) {
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, input, o.location); err == nil {
			return newValue(t, o), nil
		}
	}
	if t, err := time.Parse(time.DateOnly, input); err == nil {
		return newValue(t, o), nil
	}
	return nil, parseFailure(input, "%J", "not a timestamp")
}

func nameIndex(o options, cat locale.Category, name string) int {
	return locale.Index(o.source, o.tag, cat, name)
}

func (c *captured) bind(code byte, val string, o options) error {
	switch code {
	case 'a':
		if idx := nameIndex(o, locale.DaysOfWeekShort, val); idx >= 0 {
			c.weekday.set(idx)
		}
		return nil
	case 'A':
		if idx := nameIndex(o, locale.DaysOfWeek, val); idx >= 0 {
			c.weekday.set(idx)
		}
		return nil
	case 'b':
		if idx := nameIndex(o, locale.MonthsOfYearShort, val); idx >= 0 {
			c.month.set(idx)
		}
		return nil
	case 'B':
		if idx := nameIndex(o, locale.MonthsOfYear, val); idx >= 0 {
			c.month.set(idx)
		}
		return nil
	case 'p', 'P':
		return c.bindMeridiem(val, o)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("not a number: %q", val)
	}
	switch code {
	case 'Y', 'G':
		c.year.set(n)
	case 'E':
		c.year.set(n - 543)
	case 'y', 'g':
		if n >= TwoDigitYearPivot {
			c.year.set(1900 + n)
		} else {
			c.year.set(2000 + n)
		}
	case 'm':
		c.month.set(n - 1)
	case 'd':
		c.day.set(n)
	case 'H', 'k', 'I', 'l':
		c.hour.set(n)
	case 'M', 'i':
		c.minute.set(n)
	case 'S':
		c.second.set(n)
	case 'u':
		c.weekday.set(n - 1)
	case 'w':
		c.weekday.set(n)
	case 'j':
		c.yearDay.set(n)
	case 'U':
		c.week.set(n)
		c.convention = SundayFirst
	case 'W':
		c.week.set(n)
		c.convention = MondayFirst
	case 'V':
		c.week.set(n)
		c.convention = ISO8601
	}
	return nil
}

func (c *captured) bindMeridiem(val string, o options) error {
	idx := nameIndex(o, locale.Meridiem, val)
	if idx < 0 {
		switch strings.ToLower(val) {
		case "am":
			idx = 0
		case "pm":
			idx = 1
		default:
			return fmt.Errorf("unrecognised meridiem: %q", val)
		}
	}
	if idx == 0 {
		c.meridiem = am
	} else {
		c.meridiem = pm
	}
	return nil
}

func (o options) date(year, month, day, hour, minute, second int) *Value {
	return &Value{
		when:   time.Date(year, time.Month(month), day, hour, minute, second, 0, o.location),
		tag:    o.tag,
		source: o.source,
	}
}

func (c *captured) resolve(o options) (*Value, error) {
	if c.hour.ok {
		switch {
		case c.meridiem == am && c.hour.val == 12:
			c.hour.val = 0
		case c.meridiem == pm && c.hour.val != 12:
			c.hour.val += 12
		}
	}
	year, month, day := c.year.or(0), c.month.or(0)+1, c.day.or(1)
	hour, minute, second := c.hour.or(UntimedHour), c.minute.or(0), c.second.or(0)
	if !ValidTime(hour, minute, second) {
		return nil, fmt.Errorf("invalid time: %02d:%02d:%02d", hour, minute, second)
	}
	if c.year.ok && c.month.ok && c.day.ok && ValidDate(year, month, day) {
		return o.date(year, month, day, hour, minute, second), nil
	}
	switch {
	case c.yearDay.ok:
		if c.yearDay.val < 1 || c.yearDay.val > DaysInYear(year) {
			return nil, fmt.Errorf("invalid day of year %v for %v", c.yearDay.val, year)
		}
		return o.date(year, 1, c.yearDay.val, hour, minute, second), nil
	case c.week.ok && !(c.month.ok && c.day.ok):
		return c.resolveWeek(o, year, hour, minute, second)
	}
	if !ValidDate(year, month, day) {
		return nil, fmt.Errorf("invalid date: %04d-%02d-%02d", year, month, day)
	}
	return o.date(year, month, day, hour, minute, second), nil
}

func (c *captured) resolveWeek(o options, year, hour, minute, second int) (*Value, error) {
	if c.week.val > 53 || (c.week.val < 1 && c.convention == ISO8601) {
		return nil, fmt.Errorf("invalid week: %v", c.week.val)
	}
	v := o.date(year, 1, 1, hour, minute, second).SetWeek(c.convention, c.week.val)
	if c.weekday.ok {
		if c.weekday.val < 0 || c.weekday.val > 6 {
			return nil, fmt.Errorf("invalid weekday: %v", c.weekday.val)
		}
		offset := c.weekday.val
		if c.convention != SundayFirst {
			offset = (offset + 6) % 7
		}
		v.SetDay(v.Day() + offset)
	}
	return v, nil
}
