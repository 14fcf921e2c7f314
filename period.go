// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Adjustment represents a change to the year, month, day, hour, minute
// and second fields of a Value as used by ChangedCopy.
type Adjustment [6]int

var ErrInvalidPeriod = errors.New("invalid ISO8601 period")

func consumeInt(period string) (int, byte, int, error) {
	for i := range period {
		c := period[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.Atoi(period[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", period[:i], period, ErrInvalidPeriod)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %s: %w", period, ErrInvalidPeriod)
}

// ParsePeriod parses an ISO8601 period of the form [-]PnYnMnWnDTnHnMnS
// into an Adjustment, weeks are converted to days. Only whole numbers
// are supported. Individual components may be negative, eg. P1Y-1M, as
// written by Adjustment.String.
func ParsePeriod(period string) (Adjustment, error) {
	var adj Adjustment
	nl := len(period)
	hasP, hasNP := (nl > 0 && period[0] == 'P'), (nl > 1 && period[0] == '-' && period[1] == 'P')
	if !hasP && !hasNP {
		return adj, fmt.Errorf("period must start with P or -P: %s: %w", period, ErrInvalidPeriod)
	}
	rest := period[1:]
	if hasNP {
		rest = rest[1:]
	}
	inTime := false
	for len(rest) > 0 {
		if rest[0] == 'T' {
			inTime = true
			rest = rest[1:]
			continue
		}
		n, designator, idx, err := consumeInt(rest)
		if err != nil {
			return adj, err
		}
		rest = rest[idx:]
		switch {
		case !inTime && designator == 'Y':
			adj[0] += n
		case !inTime && designator == 'M':
			adj[1] += n
		case !inTime && designator == 'W':
			adj[2] += n * 7
		case !inTime && designator == 'D':
			adj[2] += n
		case inTime && designator == 'H':
			adj[3] += n
		case inTime && designator == 'M':
			adj[4] += n
		case inTime && designator == 'S':
			adj[5] += n
		default:
			return adj, fmt.Errorf("invalid period designator: %c: %w", designator, ErrInvalidPeriod)
		}
	}
	if hasNP {
		for i := range adj {
			adj[i] = -adj[i]
		}
	}
	return adj, nil
}

// String returns the adjustment as an ISO8601 period. Adjustments that
// mix positive and negative fields are written with signed components.
func (a Adjustment) String() string {
	neg, pos := false, false
	for _, n := range a {
		neg = neg || n < 0
		pos = pos || n > 0
	}
	neg = neg && !pos
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	write := func(n int, designator byte) {
		if n == 0 {
			return
		}
		if neg {
			n = -n
		}
		out.WriteString(strconv.Itoa(n))
		out.WriteByte(designator)
	}
	write(a[0], 'Y')
	write(a[1], 'M')
	write(a[2], 'D')
	if a[3] != 0 || a[4] != 0 || a[5] != 0 {
		out.WriteByte('T')
		write(a[3], 'H')
		write(a[4], 'M')
		write(a[5], 'S')
	}
	return out.String()
}

// Shift returns a copy of v with the adjustment applied to its fields.
func (v *Value) Shift(adj Adjustment) *Value {
	return v.ChangedCopy(adj[:], nil)
}
