// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package regfile reads and writes switch register dumps as text, one
// "0xADDR 0xVALUE" register per line. Blank lines and '#' comments at the
// start of a line or after whitespace are ignored.
package regfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/platinasystems/goes-rrcp/internal/accumulate"
	"github.com/platinasystems/goes-rrcp/internal/nocomment"
)

var (
	ErrNoRegister = errors.New("no such register")
	ErrSyntax     = errors.New("syntax error")
)

// File is a register dump that may be replayed as a transport.
type File map[uint16]uint16

func (f File) ReadReg16(addr uint16) (uint16, error) {
	v, found := f[addr]
	if !found {
		return 0, fmt.Errorf("0x%04x: %w", addr, ErrNoRegister)
	}
	return v, nil
}

func (f File) Close() error { return nil }

// Load the named register file.
func Load(fn string) (File, error) {
	r, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f, err := Parse(r)
	if err != nil {
		err = fmt.Errorf("%s:%w", fn, err)
	}
	return f, err
}

// Parse a register file; a repeated address keeps the last value.
func Parse(r io.Reader) (File, error) {
	f := make(File)
	scan := bufio.NewScanner(r)
	for n := 1; scan.Scan(); n++ {
		line := nocomment.New(scan.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%d: %w: %q", n, ErrSyntax, line)
		}
		addr, err := strconv.ParseUint(fields[0], 0, 16)
		if err != nil {
			return nil, fmt.Errorf("%d: %w: address %q", n, ErrSyntax,
				fields[0])
		}
		v, err := strconv.ParseUint(fields[1], 0, 16)
		if err != nil {
			return nil, fmt.Errorf("%d: %w: value %q", n, ErrSyntax,
				fields[1])
		}
		f[uint16(addr)] = uint16(v)
	}
	return f, scan.Err()
}

// Addresses in ascending order.
func (f File) Addresses() []uint16 {
	addrs := make([]uint16, 0, len(f))
	for addr := range f {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// WriteTo formats the file in ascending address order.
func (f File) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	for _, addr := range f.Addresses() {
		fmt.Fprintf(acc, "0x%04x 0x%04x\n", addr, f[addr])
	}
	return acc.Tuple()
}

type reader interface {
	ReadReg16(addr uint16) (uint16, error)
}

// Recorder keeps a copy of every successful read through a transport.
type Recorder struct {
	r    reader
	File File
}

func NewRecorder(r reader) *Recorder {
	return &Recorder{r, make(File)}
}

func (r *Recorder) ReadReg16(addr uint16) (uint16, error) {
	v, err := r.r.ReadReg16(addr)
	if err == nil {
		r.File[addr] = v
	}
	return v, err
}
