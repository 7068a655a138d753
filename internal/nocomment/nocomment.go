// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package nocomment strips a line's trailing '#' prefaced comment along with
// the surrounding whitespace. For example,
//
//	nocomment.New("0x0200 0x0001 # rrcp") returns "0x0200 0x0001"
//	nocomment.New("  # rtl8326") returns ""
//	nocomment.New("0x0200#0x0001") returns "0x0200#0x0001"
package nocomment

import "strings"

func New(s string) string {
	t := strings.TrimLeft(s, " \t")
	if len(t) == 0 || t[0] == '#' {
		return ""
	}
	for i := 1; i < len(t); i++ {
		if t[i] == '#' && (t[i-1] == ' ' || t[i-1] == '\t') {
			t = t[:i]
			break
		}
	}
	return strings.TrimRight(t, " \t")
}
