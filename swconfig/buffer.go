// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package swconfig

import (
	"fmt"
	"io"
	"strings"
)

// DefaultLimit is 32KiB, room for the configuration of any RTL83xx
// variant.
const DefaultLimit = 32768

// Buffer accumulates configuration directives up to a limit. A directive
// that doesn't fit is silently dropped, whole; later, shorter directives
// may still fit. Dropped counts them.
type Buffer struct {
	sb      strings.Builder
	limit   int
	dropped int
}

// NewBuffer returns a Buffer holding less than limit bytes, or unbounded
// if limit <= 0.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

// Printf appends a formatted directive if it fits.
func (b *Buffer) Printf(format string, args ...interface{}) {
	b.append(fmt.Sprintf(format, args...))
}

func (b *Buffer) append(s string) {
	if b.limit > 0 && b.sb.Len()+len(s) >= b.limit {
		b.dropped++
		return
	}
	b.sb.WriteString(s)
}

func (b *Buffer) Dropped() int   { return b.dropped }
func (b *Buffer) Len() int       { return b.sb.Len() }
func (b *Buffer) String() string { return b.sb.String() }

func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.sb.String())
	return int64(n), err
}
