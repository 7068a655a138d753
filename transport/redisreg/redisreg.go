// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package redisreg reads switch registers published in a redis hash by an
// agent with access to the switch. The hash field is the "0xADDR" register
// address and its value is a decimal, 0x hex, or 0 octal number.
package redisreg

import (
	"errors"
	"fmt"
	"strconv"

	redigo "github.com/garyburd/redigo/redis"
)

const DefaultHash = "rrcp.regs"

var ErrNil = errors.New("no such register")

type Registers struct {
	conn redigo.Conn
	hash string
}

// Dial the redis server at address, e.g. "localhost:6379".
func Dial(address, hash string) (*Registers, error) {
	conn, err := redigo.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	return New(conn, hash), nil
}

// New reads registers from the hash of the given connection; an empty hash
// is DefaultHash.
func New(conn redigo.Conn, hash string) *Registers {
	if len(hash) == 0 {
		hash = DefaultHash
	}
	return &Registers{conn, hash}
}

func Field(addr uint16) string { return fmt.Sprintf("0x%04x", addr) }

func (r *Registers) ReadReg16(addr uint16) (uint16, error) {
	field := Field(addr)
	s, err := redigo.String(r.conn.Do("HGET", r.hash, field))
	if err == redigo.ErrNil {
		err = ErrNil
	}
	if err != nil {
		return 0, fmt.Errorf("hget %s %s: %w", r.hash, field, err)
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("hget %s %s: %w", r.hash, field, err)
	}
	return uint16(v), nil
}

func (r *Registers) Close() error { return r.conn.Close() }
