// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

/*
Package accumulate provides a wrapper to sum Writers.
Use it in a WriteTo like this,

	func (t *TYPE) WriteTo(w) (int64, error) {
		acc := accumulate.New(w)
		fmt.Fprint(acc, ...)
		...
		fmt.Fprint(acc, ...)
		return acc.Tuple()
	}

An accumulator will skip subsequent writes on error.
*/
package accumulate

import "io"

type Accumulator struct {
	n   int64
	err error
	w   io.Writer
}

func New(w io.Writer) *Accumulator {
	return &Accumulator{w: w}
}

// Error records the first non-nil argument, if any, then returns the first
// error encountered by the accumulator.
func (acc *Accumulator) Error(errs ...error) error {
	for _, err := range errs {
		if acc.err == nil {
			acc.err = err
		}
	}
	return acc.err
}

func (acc *Accumulator) Tuple() (int64, error) {
	return acc.n, acc.err
}

func (acc *Accumulator) Write(b []byte) (int, error) {
	var i int
	if acc.err != nil {
		return 0, acc.err
	}
	i, acc.err = acc.w.Write(b)
	acc.n += int64(i)
	return i, acc.err
}

func (acc *Accumulator) WriteString(s string) (int, error) {
	return acc.Write([]byte(s))
}
