// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datebox

import (
	"regexp"
	"strings"
)

// tokenRE matches a template token, %<flags><code>.
var tokenRE = regexp.MustCompile(`%([0-]*)([0-9A-Za-z])`)

// Format expands every %<flags><code> token in template using the
// fields of v. Numeric fields less than 10 are zero padded unless the
// '-' flag is present, names and suffixes are never padded. Tokens with
// an unknown code are copied unchanged. A locale specified via opts
// applies only to this call.
func (v *Value) Format(template string, opts ...Option) string {
	o := v.with(opts)
	return tokenRE.ReplaceAllStringFunc(template, func(token string) string {
		flags, code := token[1:len(token)-1], token[len(token)-1:]
		spec, ok := fields[code]
		if !ok {
			return token
		}
		f := spec.get(v, o)
		if strings.Contains(flags, "-") {
			return f.String()
		}
		return f.Padded()
	})
}
