// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"cloudeng.io/datebox/locale"
)

const msPerDay = 24 * 60 * 60 * 1000

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Year returns the year, eg. 2001.
func (v *Value) Year() int { return v.when.Year() }

// SetYear sets the year.
func (v *Value) SetYear(year int) *Value { return v.SetPart(PartYear, year) }

// Month returns the month of the year in the range 1-12.
func (v *Value) Month() int { return int(v.when.Month()) }

// SetMonth sets the month using 1 for January.
func (v *Value) SetMonth(month int) *Value { return v.SetPart(PartMonth, month-1) }

// Day returns the day of the month.
func (v *Value) Day() int { return v.when.Day() }

// SetDay sets the day of the month.
func (v *Value) SetDay(day int) *Value { return v.SetPart(PartDay, day) }

// Hour returns the hour of the day in the range 0-23.
func (v *Value) Hour() int { return v.when.Hour() }

// SetHour sets the hour of the day.
func (v *Value) SetHour(hour int) *Value { return v.SetPart(PartHour, hour) }

// Minute returns the minute of the hour.
func (v *Value) Minute() int { return v.when.Minute() }

// SetMinute sets the minute of the hour.
func (v *Value) SetMinute(minute int) *Value { return v.SetPart(PartMinute, minute) }

// Second returns the second of the minute.
func (v *Value) Second() int { return v.when.Second() }

// SetSecond sets the second of the minute.
func (v *Value) SetSecond(second int) *Value { return v.SetPart(PartSecond, second) }

// Hour12 returns the hour on a 12 hour clock, 1-12.
func (v *Value) Hour12() int {
	switch h := v.Hour(); {
	case h == 0:
		return 12
	case h < 13:
		return h
	default:
		return h - 12
	}
}

// IsPM returns true for times from noon onwards.
func (v *Value) IsPM() bool { return v.Hour() >= 12 }

// Century returns floor(year/100).
func (v *Value) Century() int { return int(floorDiv(int64(v.Year()), 100)) }

// BuddhistYear returns the year of the Buddhist era.
func (v *Value) BuddhistYear() int { return v.Year() + 543 }

// Weekday returns the day of the week with 0 for Sunday.
func (v *Value) Weekday() int { return int(v.when.Weekday()) }

// YearDay returns the day of the year in the range 1-366.
func (v *Value) YearDay() int { return DayOfYear(v.Year(), v.Month(), v.Day()) }

// Ordinal returns the English ordinal suffix for the day of the month.
func (v *Value) Ordinal() string {
	d := v.Day()
	if d > 9 && d < 21 {
		return "th"
	}
	switch d % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Epoch returns the number of seconds since the Unix epoch.
func (v *Value) Epoch() int64 { return v.when.Unix() }

// SetEpoch sets the instant to the specified number of seconds since
// the Unix epoch.
func (v *Value) SetEpoch(sec int64) *Value {
	v.when = time.Unix(sec, 0).In(v.when.Location())
	return v
}

// EpochDays returns the number of whole days since the Unix epoch.
func (v *Value) EpochDays() int64 { return floorDiv(v.when.UnixMilli(), msPerDay) }

// JSON returns the instant as an ISO-8601 UTC timestamp with milliseconds.
func (v *Value) JSON() string {
	return v.when.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ISO returns the date as YYYY-MM-DD.
func (v *Value) ISO() string {
	return pad(int64(v.Year())) + "-" + pad(int64(v.Month())) + "-" + pad(int64(v.Day()))
}

// Comp returns the date as the integer YYYYMMDD, suitable for comparisons.
func (v *Value) Comp() int {
	return v.Year()*10000 + v.Month()*100 + v.Day()
}

// ZoneOffset returns the offset of the local wall clock from UTC as
// signed hours, eg. -05, or +05:30 for offsets that are not whole hours.
func (v *Value) ZoneOffset() string {
	_, secs := v.when.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	h, m := secs/3600, (secs%3600)/60
	if m == 0 {
		return fmt.Sprintf("%s%02d", sign, h)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// WeekdayName returns the full or abbreviated name of the day of the week.
func (v *Value) WeekdayName(short bool, opts ...Option) string {
	cat := locale.DaysOfWeek
	if short {
		cat = locale.DaysOfWeekShort
	}
	return v.with(opts).name(cat, v.Weekday())
}

// MonthName returns the full or abbreviated name of the month.
func (v *Value) MonthName(short bool, opts ...Option) string {
	cat := locale.MonthsOfYear
	if short {
		cat = locale.MonthsOfYearShort
	}
	return v.with(opts).name(cat, v.Month()-1)
}

// Meridiem returns the locale's am or pm label, in upper or lower case.
func (v *Value) Meridiem(upper bool, opts ...Option) string {
	o := v.with(opts)
	idx := 0
	if v.IsPM() {
		idx = 1
	}
	label := o.name(locale.Meridiem, idx)
	if upper {
		return locale.Upper(o.tag, label)
	}
	return locale.Lower(o.tag, label)
}

func (o options) name(cat locale.Category, idx int) string {
	names := locale.Lookup(o.source, o.tag, cat)
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}

func pad(n int64) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Field represents the value of a field code as returned by Get.
type Field struct {
	Code    string
	Numeric bool
	Num     int64
	Text    string
}

// String returns the value without padding.
func (f Field) String() string {
	if f.Numeric {
		return strconv.FormatInt(f.Num, 10)
	}
	return f.Text
}

// Padded returns numeric values less than 10 with a leading zero and
// all other values as per String.
func (f Field) Padded() string {
	if f.Numeric {
		return pad(f.Num)
	}
	return f.Text
}

type fieldSpec struct {
	get func(v *Value, o options) Field
	set func(v *Value, n int64)
}

func num(fn func(v *Value) int) func(*Value, options) Field {
	return func(v *Value, _ options) Field {
		return Field{Numeric: true, Num: int64(fn(v))}
	}
}

func num64(fn func(v *Value) int64) func(*Value, options) Field {
	return func(v *Value, _ options) Field {
		return Field{Numeric: true, Num: fn(v)}
	}
}

func text(fn func(v *Value, o options) string) func(*Value, options) Field {
	return func(v *Value, o options) Field {
		return Field{Text: fn(v, o)}
	}
}

func setInt(fn func(v *Value, n int) *Value) func(*Value, int64) {
	return func(v *Value, n int64) { fn(v, int(n)) }
}

func nameOf(cat locale.Category, idx func(v *Value) int) func(*Value, options) string {
	return func(v *Value, o options) string { return o.name(cat, idx(v)) }
}

func meridiem(upper bool) func(*Value, options) string {
	return func(v *Value, o options) string {
		return v.Meridiem(upper, WithLocale(o.tag), WithLocaleSource(o.source))
	}
}

var fields map[string]fieldSpec

func init() {
	weekday := (*Value).Weekday
	month0 := func(v *Value) int { return v.Month() - 1 }
	minute := fieldSpec{num((*Value).Minute), setInt((*Value).SetMinute)}
	epoch := fieldSpec{num64((*Value).Epoch), func(v *Value, n int64) { v.SetEpoch(n) }}
	hour := fieldSpec{num((*Value).Hour), setInt((*Value).SetHour)}
	hour12 := fieldSpec{get: num((*Value).Hour12)}
	fields = map[string]fieldSpec{
		"a": {get: text(nameOf(locale.DaysOfWeekShort, weekday))},
		"A": {get: text(nameOf(locale.DaysOfWeek, weekday))},
		"b": {get: text(nameOf(locale.MonthsOfYearShort, month0))},
		"B": {get: text(nameOf(locale.MonthsOfYear, month0))},
		"C": {get: num((*Value).Century)},
		"d": {num((*Value).Day), setInt((*Value).SetDay)},
		"E": {get: num((*Value).BuddhistYear)},
		"G": {get: num((*Value).ISOYear)},
		"g": {get: num(func(v *Value) int { return v.ISOYear() % 100 })},
		"H": hour,
		"k": {get: hour.get},
		"I": hour12,
		"l": hour12,
		"i": minute,
		"j": {get: num((*Value).YearDay)},
		"J": {get: text(func(v *Value, _ options) string { return v.JSON() })},
		"m": {num((*Value).Month), setInt((*Value).SetMonth)},
		"M": minute,
		"o": {get: text(func(v *Value, _ options) string { return v.Ordinal() })},
		"p": {get: text(meridiem(false))},
		"P": {get: text(meridiem(true))},
		"s": epoch,
		"S": {num((*Value).Second), setInt((*Value).SetSecond)},
		"T": {get: text(func(v *Value, _ options) string { return v.ZoneOffset() })},
		"u": {get: num(func(v *Value) int { return v.Weekday() + 1 })},
		"U": {get: num(func(v *Value) int { return v.Week(SundayFirst) })},
		"V": {get: num(func(v *Value) int { return v.Week(ISO8601) })},
		"w": {get: num(weekday)},
		"W": {get: num(func(v *Value) int { return v.Week(MondayFirst) })},
		"y": {get: num(func(v *Value) int { return v.Year() % 100 })},
		"Y": {num((*Value).Year), setInt((*Value).SetYear)},

		"epoch":     epoch,
		"epochDays": {get: num64((*Value).EpochDays)},
		"iso":       {get: text(func(v *Value, _ options) string { return v.ISO() })},
		"comp":      {get: num((*Value).Comp)},
	}
}

// Codes returns the names of all supported field codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(fields))
	for c := range fields {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Get returns the value of the field identified by code. Display names
// use the locale of v unless overridden by opts.
func (v *Value) Get(code string, opts ...Option) (Field, bool) {
	spec, ok := fields[code]
	if !ok {
		return Field{}, false
	}
	f := spec.get(v, v.with(opts))
	f.Code = code
	return f, true
}

// Set sets the field identified by code, returning false if the
// code is unknown or not settable. Out of range values are normalized,
// so setting month 13 yields January of the following year.
func (v *Value) Set(code string, value int64) bool {
	spec, ok := fields[code]
	if !ok || spec.set == nil {
		return false
	}
	spec.set(v, value)
	return true
}

// Settable returns true if code can be used with Set.
func Settable(code string) bool {
	spec, ok := fields[code]
	return ok && spec.set != nil
}
