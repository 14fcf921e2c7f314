// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the sources of display names used when formatting
// and parsing dates: weekday and month names and the meridiem labels.
// A Source may be backed by the names built into the Go runtime (Platform),
// by tables supplied by the caller (Tables) or by an arbitrary function
// (SourceFunc).
package locale

import (
	"golang.org/x/text/language"
)

// Category identifies a list of display names.
type Category string

const (
	DaysOfWeek        Category = "daysOfWeek"
	DaysOfWeekShort   Category = "daysOfWeekShort"
	MonthsOfYear      Category = "monthsOfYear"
	MonthsOfYearShort Category = "monthsOfYearShort"
	Meridiem          Category = "meridiem"
)

// Categories lists all of the supported categories.
var Categories = []Category{
	DaysOfWeek,
	DaysOfWeekShort,
	MonthsOfYear,
	MonthsOfYearShort,
	Meridiem,
}

// Len returns the number of names expected for the category, or zero
// for an unknown category: 7 for weekdays (Sunday first), 12 for months
// (January first) and 2 for the meridiem (am, pm).
func (c Category) Len() int {
	switch c {
	case DaysOfWeek, DaysOfWeekShort:
		return 7
	case MonthsOfYear, MonthsOfYearShort:
		return 12
	case Meridiem:
		return 2
	}
	return 0
}

// Source returns the ordered display names for a category in the
// specified locale. Implementations should return nil for categories
// they do not support.
type Source interface {
	Names(tag language.Tag, category Category) []string
}

// SourceFunc allows a function to be used as a Source.
type SourceFunc func(tag language.Tag, category Category) []string

// Names implements Source.
func (fn SourceFunc) Names(tag language.Tag, category Category) []string {
	return fn(tag, category)
}

// Lookup returns the names for the category from src, or nil if src
// is nil or returns the wrong number of names.
func Lookup(src Source, tag language.Tag, category Category) []string {
	if src == nil {
		return nil
	}
	names := src.Names(tag, category)
	if len(names) != category.Len() {
		return nil
	}
	return names
}

// Index returns the position of name in the list of names for the
// category, or -1. Matching is exact first and then case insensitive.
func Index(src Source, tag language.Tag, category Category, name string) int {
	names := Lookup(src, tag, category)
	for i, n := range names {
		if n == name {
			return i
		}
	}
	for i, n := range names {
		if equalFold(tag, n, name) {
			return i
		}
	}
	return -1
}
