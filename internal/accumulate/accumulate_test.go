// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package accumulate

import (
	"errors"
	"fmt"
	"io/ioutil"
	"testing"
)

func Test(t *testing.T) {
	var n int64
	acc := New(ioutil.Discard)

	for _, s := range []string{
		"0x0200 0x0001\n",
		"0x0201 0x0000\n",
	} {
		acc.WriteString(s)
		n += int64(len(s))
	}
	if err := acc.Error(); err != nil {
		t.Fatal(err)
	}
	if sum, _ := acc.Tuple(); sum != n {
		t.Fatalf("accumulated %d, expected %d", sum, n)
	}
}

type short int

func (p *short) Write(b []byte) (int, error) {
	if len(b) > int(*p) {
		return int(*p), errors.New("short write")
	}
	*p -= short(len(b))
	return len(b), nil
}

func TestSkip(t *testing.T) {
	w := short(20)
	acc := New(&w)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(acc, "0x%04x 0x%04x\n", i, i)
	}
	n, err := acc.Tuple()
	if err == nil || n != 20 {
		t.Fatal(n, err)
	}
}
