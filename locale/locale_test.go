// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale_test

import (
	"testing"

	"cloudeng.io/datebox/locale"
	"golang.org/x/text/language"
)

func TestPlatform(t *testing.T) {
	p := locale.Platform{}
	for i, tc := range []struct {
		category    locale.Category
		first, last string
	}{
		{locale.DaysOfWeek, "Sunday", "Saturday"},
		{locale.DaysOfWeekShort, "Sun", "Sat"},
		{locale.MonthsOfYear, "January", "December"},
		{locale.MonthsOfYearShort, "Jan", "Dec"},
		{locale.Meridiem, "AM", "PM"},
	} {
		names := p.Names(language.French, tc.category)
		if got, want := len(names), tc.category.Len(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
			continue
		}
		if got, want := names[0], tc.first; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := names[len(names)-1], tc.last; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if got := p.Names(language.English, locale.Category("eras")); got != nil {
		t.Errorf("unexpected names: %v", got)
	}
}

func TestCategories(t *testing.T) {
	total := 0
	for _, c := range locale.Categories {
		total += c.Len()
	}
	if got, want := total, 7+7+12+12+2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := locale.Category("eras").Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLookupAndIndex(t *testing.T) {
	if got := locale.Lookup(nil, language.English, locale.DaysOfWeek); got != nil {
		t.Errorf("unexpected names: %v", got)
	}
	short := locale.SourceFunc(func(language.Tag, locale.Category) []string {
		return []string{"one", "two", "three"}
	})
	if got := locale.Lookup(short, language.English, locale.DaysOfWeek); got != nil {
		t.Errorf("unexpected names: %v", got)
	}
	if got, want := locale.Index(short, language.English, locale.DaysOfWeek, "one"), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	p := locale.Platform{}
	for i, tc := range []struct {
		category locale.Category
		name     string
		want     int
	}{
		{locale.DaysOfWeek, "Monday", 1},
		{locale.DaysOfWeek, "MONDAY", 1},
		{locale.DaysOfWeekShort, "sat", 6},
		{locale.MonthsOfYear, "december", 11},
		{locale.MonthsOfYearShort, "Feb", 1},
		{locale.Meridiem, "pm", 1},
		{locale.Meridiem, "noon", -1},
		{locale.MonthsOfYear, "Jan", -1},
	} {
		if got, want := locale.Index(p, language.English, tc.category, tc.name), tc.want; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.name, got, want)
		}
	}
}

func TestCase(t *testing.T) {
	if got, want := locale.Upper(language.Turkish, "pi"), "Pİ"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := locale.Upper(language.English, "pm"), "PM"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := locale.Lower(language.French, "DÉCEMBRE"), "décembre"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
