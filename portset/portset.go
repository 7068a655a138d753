// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package portset provides a set of physical switch port indices.
//
// RTL83xx registers carry per-port state as bitmaps where bit i is the
// physical port with index i. A Set hides that encoding so that callers
// test membership by port rather than by shift and mask.
package portset

import (
	"math/bits"
	"strconv"
	"strings"
)

// Cap is the number of port indices a Set may hold, 0 through Cap-1.
const Cap = 32

type Set uint32

// Of returns the set encoded by a register bitmap.
func Of(bitmap uint32) Set { return Set(bitmap) }

// Make returns the set of the given port indices; those outside
// [0, Cap) are ignored.
func Make(ports ...int) (s Set) {
	for _, i := range ports {
		s = s.Add(i)
	}
	return
}

// All returns the set of ports 0 through n-1.
func All(n int) Set {
	if n >= Cap {
		return ^Set(0)
	}
	if n <= 0 {
		return 0
	}
	return Set(1)<<uint(n) - 1
}

func (s Set) Has(i int) bool {
	if i < 0 || i >= Cap {
		return false
	}
	return s&(1<<uint(i)) != 0
}

func (s Set) Add(i int) Set {
	if i < 0 || i >= Cap {
		return s
	}
	return s | 1<<uint(i)
}

func (s Set) Union(o Set) Set     { return s | o }
func (s Set) Intersect(o Set) Set { return s & o }

// Mask returns the subset of ports with index less than n.
func (s Set) Mask(n int) Set { return s & All(n) }

func (s Set) Len() int     { return bits.OnesCount32(uint32(s)) }
func (s Set) Empty() bool  { return s == 0 }
func (s Set) Bits() uint32 { return uint32(s) }

// Each calls f with every member in ascending order.
func (s Set) Each(f func(i int)) {
	for v := uint32(s); v != 0; v &= v - 1 {
		f(bits.TrailingZeros32(v))
	}
}

func (s Set) Slice() []int {
	l := make([]int, 0, s.Len())
	s.Each(func(i int) { l = append(l, i) })
	return l
}

func (s Set) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('{')
	first := true
	s.Each(func(i int) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(strconv.Itoa(i))
	})
	sb.WriteByte('}')
	return sb.String()
}
