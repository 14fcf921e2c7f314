// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"context"
	"fmt"
	"sync"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Table contains the display names for a single locale. Empty categories
// are supplied by the fallback Source of the Tables that the Table
// is added to.
type Table struct {
	DaysOfWeek        []string `yaml:"daysOfWeek,flow,omitempty" cmd:"full weekday names, Sunday first"`
	DaysOfWeekShort   []string `yaml:"daysOfWeekShort,flow,omitempty" cmd:"abbreviated weekday names, Sunday first"`
	MonthsOfYear      []string `yaml:"monthsOfYear,flow,omitempty" cmd:"full month names, January first"`
	MonthsOfYearShort []string `yaml:"monthsOfYearShort,flow,omitempty" cmd:"abbreviated month names, January first"`
	Meridiem          []string `yaml:"meridiem,flow,omitempty" cmd:"am and pm labels"`
}

func (t Table) names(category Category) []string {
	switch category {
	case DaysOfWeek:
		return t.DaysOfWeek
	case DaysOfWeekShort:
		return t.DaysOfWeekShort
	case MonthsOfYear:
		return t.MonthsOfYear
	case MonthsOfYearShort:
		return t.MonthsOfYearShort
	case Meridiem:
		return t.Meridiem
	}
	return nil
}

// Validate returns an error for every category that is specified with
// the wrong number of names.
func (t Table) Validate() error {
	errs := &errors.M{}
	for _, c := range Categories {
		n := t.names(c)
		if len(n) == 0 || len(n) == c.Len() {
			continue
		}
		errs.Append(fmt.Errorf("%v: got %v names, want %v", c, len(n), c.Len()))
	}
	return errs.Err()
}

// Tables is a Source backed by per-locale tables. The table used for
// a given tag is chosen by a language.Matcher over the tags of the
// added tables. Tags with no acceptable match and categories that a
// matched table leaves empty are looked up in the fallback Source.
// Tables is safe for concurrent use.
type Tables struct {
	fallback Source

	mu      sync.RWMutex
	tags    []language.Tag // GUARDED_BY(mu)
	tables  []Table        // GUARDED_BY(mu)
	matcher language.Matcher
}

// NewTables returns an empty set of tables. If fallback is nil, Platform
// is used.
func NewTables(fallback Source) *Tables {
	if fallback == nil {
		fallback = Platform{}
	}
	return &Tables{fallback: fallback}
}

// Add adds, or replaces, the table for tag.
func (t *Tables) Add(tag language.Tag, table Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("locale %v: %w", tag, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.tags {
		if existing == tag {
			t.tables[i] = table
			return nil
		}
	}
	t.tags = append(t.tags, tag)
	t.tables = append(t.tables, table)
	t.matcher = language.NewMatcher(t.tags)
	return nil
}

// Tags returns the tags of all added tables in the order they were added.
func (t *Tables) Tags() []language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]language.Tag(nil), t.tags...)
}

// Match returns the table that best matches tag.
func (t *Tables) Match(tag language.Tag) (language.Tag, Table, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.matcher == nil {
		return language.Und, Table{}, false
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return language.Und, Table{}, false
	}
	return t.tags[idx], t.tables[idx], true
}

// Names implements Source.
func (t *Tables) Names(tag language.Tag, category Category) []string {
	if _, table, ok := t.Match(tag); ok {
		if names := table.names(category); len(names) > 0 {
			return names
		}
	}
	return t.fallback.Names(tag, category)
}

// TableConfig is the YAML representation of a single Table.
type TableConfig struct {
	Tag   string `yaml:"tag" cmd:"BCP 47 language tag, eg. fr-FR"`
	Table `yaml:",inline"`
}

// Config is the YAML representation of a set of Tables, eg:
//
//	locales:
//	  - tag: fr
//	    monthsOfYear: [janvier, février, ...]
//	    meridiem: [AM, PM]
type Config struct {
	Locales []TableConfig `yaml:"locales" cmd:"per-locale display names"`
}

// NewTablesFromConfig creates Tables from the supplied configuration,
// reporting all invalid tags and tables.
func NewTablesFromConfig(cfg Config, fallback Source) (*Tables, error) {
	tables := NewTables(fallback)
	errs := &errors.M{}
	for _, tc := range cfg.Locales {
		tag, err := language.Parse(tc.Tag)
		if err != nil {
			errs.Append(fmt.Errorf("invalid locale tag %q: %w", tc.Tag, err))
			continue
		}
		errs.Append(tables.Add(tag, tc.Table))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// ParseTables parses a YAML specification of locale tables, see Config.
func ParseTables(spec []byte, fallback Source) (*Tables, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return nil, err
	}
	return NewTablesFromConfig(cfg, fallback)
}

// LoadTables is like ParseTables but reads the specification from
// the named file.
func LoadTables(ctx context.Context, filename string, fallback Source) (*Tables, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	return NewTablesFromConfig(cfg, fallback)
}

// Config returns the configuration that would recreate t.
func (t *Tables) Config() Config {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cfg := Config{Locales: make([]TableConfig, len(t.tags))}
	for i, tag := range t.tags {
		cfg.Locales[i] = TableConfig{Tag: tag.String(), Table: t.tables[i]}
	}
	return cfg
}

// YAML returns the YAML representation of t.
func (t *Tables) YAML() ([]byte, error) {
	return yaml.Marshal(t.Config())
}
