// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

import (
	"time"
)

// WeekConvention determines how weeks are numbered within a year.
type WeekConvention int

const (
	// SundayFirst numbers weeks from the first Sunday of the year,
	// days before it are in week 0 (%U).
	SundayFirst WeekConvention = 0
	// MondayFirst numbers weeks from the first Monday of the year,
	// days before it are in week 0 (%W).
	MondayFirst WeekConvention = 1
	// ISO8601 numbers weeks as per ISO-8601, week 1 is the first week
	// with at least 4 days in January and weeks start on Monday (%V).
	ISO8601 WeekConvention = 4
)

const msPerWeek = 7 * msPerDay

// FirstDay moves v to the first occurrence of weekday (0 for Sunday) in
// its current month and returns v.
func (v *Value) FirstDay(weekday int) *Value {
	v.SetDay(1)
	v.SetDay(v.Day() + (weekday - v.Weekday()))
	if v.Day() > 10 {
		// Moved back into the previous month.
		v.SetDay(v.Day() + 7)
	}
	return v
}

// offsetMinutes returns the local offset in minutes west of UTC.
func offsetMinutes(t time.Time) int64 {
	_, secs := t.Zone()
	return -int64(secs) / 60
}

// weeksSince returns the number of whole weeks from ref to v. If
// correct is set, the difference in UTC offsets between the two is
// removed so that daylight saving transitions do not shift the result.
func (v *Value) weeksSince(ref *Value, correct bool) int {
	start := ref.when.UnixMilli()
	if correct {
		start += (offsetMinutes(v.when) - offsetMinutes(ref.when)) * 60000
	}
	return int(floorDiv(v.when.UnixMilli()-start, msPerWeek))
}

// isoWeekOneOfNextYear returns true for the days at the end of December
// that belong to week 1 of the following ISO year, ie. those whose
// week's Thursday is in January.
func (v *Value) isoWeekOneOfNextYear() bool {
	if v.Month() != 12 || v.Day() <= 28 {
		return false
	}
	isoWeekday := (v.Weekday()+6)%7 + 1
	return v.Day()+(4-isoWeekday) > 31
}

// isoWeekOne returns the Monday of ISO week 1 of the year of v
// adjusted by yearDelta, at the time of day of v.
func (v *Value) isoWeekOne(yearDelta int) *Value {
	start := v.ChangedCopy([]int{yearDelta, 1 - v.Month()}, nil).FirstDay(4)
	return start.SetDay(start.Day() - 3)
}

// Week returns the week number of v under the given convention and 0
// for an unsupported convention.
func (v *Value) Week(convention WeekConvention) int {
	switch convention {
	case SundayFirst, MondayFirst:
		start := v.ChangedCopy([]int{0, 1 - v.Month()}, nil).FirstDay(int(convention))
		return v.weeksSince(start, true) + 1
	case ISO8601:
		if v.isoWeekOneOfNextYear() {
			return 1
		}
		week := v.weeksSince(v.isoWeekOne(0), true) + 1
		if week < 1 {
			// The last week of the previous ISO year. No offset correction
			// is applied across the year boundary.
			return v.weeksSince(v.isoWeekOne(-1), false) + 1
		}
		return week
	}
	return 0
}

// SetWeek moves v to the first day of the specified week of its current
// year: the Sunday for SundayFirst, and the Monday for MondayFirst and
// ISO8601. It returns v.
func (v *Value) SetWeek(convention WeekConvention, week int) *Value {
	v.SetMonth(1)
	v.SetDay(1)
	v.FirstDay(int(convention))
	if convention == ISO8601 {
		v.SetDay(v.Day() - 3)
	}
	return v.SetDay(v.Day() + (week-1)*7)
}

// ISOYear returns the ISO-8601 week based year, which differs from
// the calendar year only for days at the start of January that belong to
// the last week of the previous year and days at the end of December that
// belong to the first week of the next year.
func (v *Value) ISOYear() int {
	week := v.Week(ISO8601)
	switch {
	case week == 1 && v.Month() > 1:
		return v.Year() + 1
	case week > 51 && v.Month() < 12:
		return v.Year() - 1
	}
	return v.Year()
}
