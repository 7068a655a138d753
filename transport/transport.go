// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package transport provides the 16-bit register access used to snapshot
// RTL83xx switch configuration.
package transport

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/platinasystems/goes-rrcp/transport/redisreg"
	"github.com/platinasystems/goes-rrcp/transport/regfile"
	"github.com/platinasystems/goes-rrcp/transport/smbus"
	"github.com/prometheus/client_golang/prometheus"
)

var ErrScheme = errors.New("unknown register source")

// Reader16 reads one 16-bit switch register. It is owned by a single read
// pass and needn't be safe for concurrent use.
type Reader16 interface {
	ReadReg16(addr uint16) (uint16, error)
}

// Func adapts a function to Reader16.
type Func func(addr uint16) (uint16, error)

func (f Func) ReadReg16(addr uint16) (uint16, error) { return f(addr) }

// Counting tallies the reads and failed reads of a transport.
type Counting struct {
	Reader16
	Reads, Errors prometheus.Counter
}

func (c Counting) ReadReg16(addr uint16) (uint16, error) {
	v, err := c.Reader16.ReadReg16(addr)
	c.Reads.Inc()
	if err != nil {
		c.Errors.Inc()
	}
	return v, err
}

// Open a register source, one of:
//
//	file:PATH
//	i2c:BUS.ADDR
//	redis:HOST:PORT[/HASH]
//
// BUS and ADDR are numbers with an optional 0x prefix.
func Open(source string) (Reader16, io.Closer, error) {
	scheme, rest := source, ""
	if i := strings.IndexByte(source, ':'); i >= 0 {
		scheme, rest = source[:i], source[i+1:]
	}
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%q: %w", source, ErrScheme)
	}
	switch scheme {
	case "file":
		f, err := regfile.Load(rest)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case "i2c":
		bus, slave, err := parseBusAddr(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("%q: %w", source, err)
		}
		r, err := smbus.Open(bus, slave)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	case "redis":
		addr, hash := rest, ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			addr, hash = rest[:i], rest[i+1:]
		}
		r, err := redisreg.Dial(addr, hash)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	}
	return nil, nil, fmt.Errorf("%q: %w", source, ErrScheme)
}

func parseBusAddr(s string) (bus, slave int, err error) {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0, 0, fmt.Errorf("missing slave address")
	}
	u, err := strconv.ParseUint(s[:i], 0, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bus: %w", err)
	}
	bus = int(u)
	u, err = strconv.ParseUint(s[i+1:], 0, 7)
	if err != nil {
		return 0, 0, fmt.Errorf("slave address: %w", err)
	}
	slave = int(u)
	return
}
