// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datebox provides a calendar value with strftime style field
// accessors, a template driven formatter and parser, and the ISO-8601 week
// arithmetic that they depend on. A Value holds a single instant and
// exposes every field as a computed property of that instant using the
// wall clock of its time.Location.
//
// Templates consist of literal text and tokens of the form
// %<flags><code> where flags is any run of '0' and '-' characters and code
// is a single letter, see Codes. The '-' flag suppresses zero padding
// of numeric fields.
//
//	v := datebox.Date(2001, 1, 1, 12, 1, 0)
//	v.Format("%A, %d-%m-%Y %H:%M:%S") // Monday, 01-01-2001 12:01:00
//	p, err := datebox.Parse("03-01-2001", "%d-%m-%Y")
//
// Display names are obtained from a locale.Source, by default
// locale.Platform.
package datebox

import (
	"time"

	"cloudeng.io/datebox/locale"
	"golang.org/x/text/language"
)

// Value represents an instant in time with local wall clock semantics
// and an associated locale. All fields are computed from the instant
// on every access. A Value is not safe for concurrent mutation; use Copy
// to obtain an independent Value.
type Value struct {
	when   time.Time
	tag    language.Tag
	source locale.Source
}

// Option represents an option for constructing, formatting or parsing
// a Value. Options supplied to Format, Parse or Get apply only to
// that call.
type Option func(o *options)

type options struct {
	tag      language.Tag
	source   locale.Source
	location *time.Location
}

// WithLocale sets the locale used for display names.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// WithLocaleSource sets the source of display names.
func WithLocaleSource(src locale.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLocation sets the location whose wall clock is used for all fields.
// It has no effect on Format.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

func newOptions(opts []Option) options {
	o := options{
		tag:      language.AmericanEnglish,
		source:   locale.Platform{},
		location: time.Local,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// with returns the options of v overridden by opts.
func (v *Value) with(opts []Option) options {
	o := options{
		tag:      v.tag,
		source:   v.source,
		location: v.when.Location(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func newValue(when time.Time, o options) *Value {
	return &Value{when: when.In(o.location), tag: o.tag, source: o.source}
}

// New returns a Value for the instant t.
func New(t time.Time, opts ...Option) *Value {
	return newValue(t, newOptions(opts))
}

// Now returns a Value for the current time.
func Now(opts ...Option) *Value {
	return New(time.Now(), opts...)
}

// FromUnixMilli returns a Value for the specified number of milliseconds
// since the Unix epoch.
func FromUnixMilli(ms int64, opts ...Option) *Value {
	return New(time.UnixMilli(ms), opts...)
}

// Date returns a Value for the specified wall clock time. The values are
// not validated; they are normalized as per time.Date, so that a month
// of 13 is January of the following year and a day of 0 is the last
// day of the preceding month.
func Date(year, month, day, hour, minute, second int, opts ...Option) *Value {
	return newOptions(opts).date(year, month, day, hour, minute, second)
}

// Time returns the instant represented by v.
func (v *Value) Time() time.Time {
	return v.when
}

// Location returns the location whose wall clock v uses.
func (v *Value) Location() *time.Location {
	return v.when.Location()
}

// Locale returns the locale of v.
func (v *Value) Locale() language.Tag {
	return v.tag
}

// SetLocale sets the locale of v.
func (v *Value) SetLocale(tag language.Tag) *Value {
	v.tag = tag
	return v
}

// LocaleSource returns the source of display names used by v.
func (v *Value) LocaleSource() locale.Source {
	return v.source
}

// SetLocaleSource sets the source of display names used by v.
func (v *Value) SetLocaleSource(src locale.Source) *Value {
	v.source = src
	return v
}

// Copy returns an independent copy of v.
func (v *Value) Copy() *Value {
	cpy := *v
	return &cpy
}

// Equal returns true if v and o represent the same instant.
func (v *Value) Equal(o *Value) bool {
	return v.when.Equal(o.when)
}

// String returns the instant in the format used by time.Time.String.
func (v *Value) String() string {
	return v.when.String()
}

// Parts returns the year, month (1-12), day, hour, minute and second of v.
func (v *Value) Parts() [6]int {
	return [6]int{v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second()}
}

func (v *Value) set(year, month, day, hour, minute, second, nsec int) {
	v.when = time.Date(year, time.Month(month), day, hour, minute, second, nsec, v.when.Location())
}

// Part identifies a field for SetPart.
type Part int

const (
	PartYear Part = iota
	PartMonth
	PartDay
	PartHour
	PartMinute
	PartSecond
	PartMillisecond
)

// SetPart sets a single field of v. Months are 0-based for SetPart.
// Out of range values are normalized and unknown parts are ignored.
// It returns v to allow for chaining.
func (v *Value) SetPart(part Part, value int) *Value {
	y, mo, d := v.when.Date()
	h, mi, s := v.when.Clock()
	ns := v.when.Nanosecond()
	switch part {
	case PartYear:
		y = value
	case PartMonth:
		mo = time.Month(value + 1)
	case PartDay:
		d = value
	case PartHour:
		h = value
	case PartMinute:
		mi = value
	case PartSecond:
		s = value
	case PartMillisecond:
		ns = value*int(time.Millisecond) + ns%int(time.Millisecond)
	default:
		return v
	}
	v.set(y, int(mo), d, h, mi, s, ns)
	return v
}

// ChangedCopy returns a new Value whose year, month (1-12), day, hour,
// minute and second are taken from override where the override is
// strictly positive and are otherwise the fields of v plus the
// corresponding adjustment. Either slice may be shorter than six
// elements, missing elements are treated as zero. The result is
// normalized as per Date and has no sub-second component.
func (v *Value) ChangedCopy(adjust, override []int) *Value {
	var adj, over [6]int
	copy(adj[:], adjust)
	copy(over[:], override)
	parts := v.Parts()
	for i := range parts {
		if over[i] > 0 {
			parts[i] = over[i]
			continue
		}
		parts[i] += adj[i]
	}
	cpy := v.Copy()
	cpy.set(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5], 0)
	return cpy
}
