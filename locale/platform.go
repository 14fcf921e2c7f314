// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Platform is a Source that uses the English names built into the
// Go time package for all locales.
type Platform struct{}

// Names implements Source.
func (Platform) Names(_ language.Tag, category Category) []string {
	switch category {
	case DaysOfWeek, DaysOfWeekShort:
		names := make([]string, 7)
		for d := time.Sunday; d <= time.Saturday; d++ {
			names[d] = d.String()
		}
		if category == DaysOfWeekShort {
			abbreviate(names)
		}
		return names
	case MonthsOfYear, MonthsOfYearShort:
		names := make([]string, 12)
		for m := time.January; m <= time.December; m++ {
			names[m-1] = m.String()
		}
		if category == MonthsOfYearShort {
			abbreviate(names)
		}
		return names
	case Meridiem:
		return []string{"AM", "PM"}
	}
	return nil
}

func abbreviate(names []string) {
	for i, n := range names {
		if len(n) > 3 {
			names[i] = n[:3]
		}
	}
}

// Lower returns s in lower case using the rules for tag.
func Lower(tag language.Tag, s string) string {
	return cases.Lower(tag).String(s)
}

// Upper returns s in upper case using the rules for tag.
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(s)
}

func equalFold(tag language.Tag, a, b string) bool {
	c := cases.Lower(tag)
	return c.String(a) == c.String(b)
}
