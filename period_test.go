// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox_test

import (
	"errors"
	"testing"

	"cloudeng.io/datebox"
)

func TestParsePeriod(t *testing.T) {
	for i, tc := range []struct {
		period string
		want   datebox.Adjustment
		str    string
	}{
		{"P1Y2M3DT4H5M6S", datebox.Adjustment{1, 2, 3, 4, 5, 6}, "P1Y2M3DT4H5M6S"},
		{"P2W", datebox.Adjustment{0, 0, 14}, "P14D"},
		{"P1W2D", datebox.Adjustment{0, 0, 9}, "P9D"},
		{"-P1M", datebox.Adjustment{0, -1}, "-P1M"},
		{"-P1YT2H", datebox.Adjustment{-1, 0, 0, -2}, "-P1YT2H"},
		{"PT36H", datebox.Adjustment{0, 0, 0, 36}, "PT36H"},
		{"PT30M", datebox.Adjustment{0, 0, 0, 0, 30}, "PT30M"},
		{"P1M1M", datebox.Adjustment{0, 2}, "P2M"},
		{"P0D", datebox.Adjustment{}, "P"},
		{"P1Y-1M", datebox.Adjustment{1, -1}, "P1Y-1M"},
		{"P-1Y", datebox.Adjustment{-1}, "-P1Y"},
		{"-P-1DT2H", datebox.Adjustment{0, 0, 1, -2}, "P1DT-2H"},
	} {
		adj, err := datebox.ParsePeriod(tc.period)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.period, err)
			continue
		}
		if got, want := adj, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := adj.String(), tc.str; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for i, adj := range []datebox.Adjustment{
		{1, -1},
		{-1, 2, -3, 4, -5, 6},
		{0, 0, 0, -1, 30},
		{-2, 0, -7},
	} {
		parsed, err := datebox.ParsePeriod(adj.String())
		if err != nil {
			t.Errorf("%v: %v: %v", i, adj, err)
			continue
		}
		if got, want := parsed, adj; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for i, period := range []string{
		"", "1Y", "Q1Y", "-", "-1Y", "P1X", "P1H", "PT1D", "PT1W", "P1.5Y", "PY", "P1", "P-Y", "P--1Y", "P1-Y",
	} {
		_, err := datebox.ParsePeriod(period)
		if err == nil || !errors.Is(err, datebox.ErrInvalidPeriod) {
			t.Errorf("%v: %q: unexpected or missing error: %v", i, period, err)
		}
	}
}

func TestShift(t *testing.T) {
	for i, tc := range []struct {
		start  *datebox.Value
		period string
		want   string
	}{
		{newDate(2001, 1, 31), "P1M", "2001-03-03 08:00:00"},
		{newDate(2001, 3, 1), "-P1D", "2001-02-28 08:00:00"},
		{newDate(2001, 1, 15), "-P1M", "2000-12-15 08:00:00"},
		{newDate(2000, 2, 29), "P1Y", "2001-03-01 08:00:00"},
		{newDate(2001, 12, 31), "PT16H", "2002-01-01 00:00:00"},
		{newDate(2001, 1, 1), "P1W", "2001-01-08 08:00:00"},
	} {
		adj, err := datebox.ParsePeriod(tc.period)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		v := tc.start.Shift(adj)
		if got, want := v.Format("%Y-%m-%d %H:%M:%S"), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if tc.start.Equal(v) {
			t.Errorf("%v: start was modified", i)
		}
	}
}
