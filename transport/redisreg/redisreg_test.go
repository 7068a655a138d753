// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package redisreg

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/platinasystems/goes-rrcp/internal/test"
)

// conn is a redigo.Conn with a memory store of hashes.
type conn struct {
	hashes map[string]map[string]string
	cmds   []string
	closed bool
}

func (c *conn) Close() error {
	c.closed = true
	return nil
}

func (c *conn) Err() error                        { return nil }
func (c *conn) Send(string, ...interface{}) error { return nil }
func (c *conn) Flush() error                      { return nil }
func (c *conn) Receive() (interface{}, error)     { return nil, nil }

func (c *conn) Do(cmd string, args ...interface{}) (interface{}, error) {
	c.cmds = append(c.cmds, fmt.Sprint(cmd, " ", args))
	if cmd != "HGET" || len(args) != 2 {
		return nil, errors.New("ERR unknown command")
	}
	h := c.hashes[args[0].(string)]
	s, found := h[args[1].(string)]
	if !found {
		return nil, nil
	}
	return []byte(s), nil
}

func TestReadReg16(t *testing.T) {
	assert := test.Assert{TB: t}
	c := &conn{hashes: map[string]map[string]string{
		DefaultHash: {
			"0x0200": "5",
			"0x030b": "0x0011",
			"0x0400": "65536",
			"0x0401": "bogus",
		},
	}}
	r := New(c, "")
	v, err := r.ReadReg16(0x0200)
	assert.Nil(err)
	assert.True(v == 5)
	v, err = r.ReadReg16(0x030b)
	assert.Nil(err)
	assert.True(v == 0x11)
	assert.Equal(c.cmds[1], "HGET [rrcp.regs 0x030b]")

	_, err = r.ReadReg16(0x0607)
	assert.Error(err, ErrNil)
	assert.Error(err, "hget rrcp.regs 0x0607: no such register")

	_, err = r.ReadReg16(0x0400)
	assert.Error(err, strconv.ErrRange)
	_, err = r.ReadReg16(0x0401)
	assert.Error(err, strconv.ErrSyntax)

	assert.Nil(r.Close())
	assert.True(c.closed)
}

func TestHash(t *testing.T) {
	c := &conn{hashes: map[string]map[string]string{
		"sw1": {"0x0200": "1"},
	}}
	v, err := New(c, "sw1").ReadReg16(0x0200)
	test.Assert{TB: t}.Nil(err)
	test.Assert{TB: t}.True(v == 1)
}
