// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

// monthDays holds the length of each month for common (0) and leap (1)
// years.
var monthDays = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// daysBefore holds the number of days in the year preceding each month.
var daysBefore [2][13]int

func init() {
	for l := range monthDays {
		for m, n := range monthDays[l] {
			daysBefore[l][m+1] = daysBefore[l][m] + n
		}
	}
}

func leap(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// IsLeap returns true if the given year is a leap year in the
// proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return monthDays[leap(year)][1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return daysBefore[leap(year)][12]
}

// DaysInMonth returns the number of days in the given month (1-12) for
// the given year, or zero for an invalid month.
func DaysInMonth(year int, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return monthDays[leap(year)][month-1]
}

// DayOfYear returns the 1-based day of the year for a valid month (1-12)
// and day.
func DayOfYear(year, month, day int) int {
	return daysBefore[leap(year)][month-1] + day
}

// ValidDate returns true if month (1-12) and day form a date that
// exists in the given year.
func ValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// ValidTime returns true for a wall clock time in the range 00:00:00
// to 23:59:59.
func ValidTime(hour, minute, second int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60 && second >= 0 && second < 60
}
