// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package smbus reads switch registers through an SMBus bridge with an
// indirect register window: a word write of the register address to
// command 0x00 followed by a word read of its value from command 0x01.
package smbus

import (
	"fmt"
	"sync"

	"github.com/platinasystems/i2c"
)

const (
	AddrCommand = 0x00
	DataCommand = 0x01
)

// Bus is the subset of i2c.Bus used by Registers.
type Bus interface {
	Do(rw i2c.RW, command uint8, size i2c.SMBusSize,
		data *i2c.SMBusData) error
	Close() error
}

// mutex serializes the address/data pairs of all windows in the process.
var mutex = &sync.Mutex{}

type Registers struct {
	bus Bus
}

// Open the /dev/i2c-INDEX bridge at the slave address.
func Open(index, slave int) (*Registers, error) {
	bus := new(i2c.Bus)
	if err := bus.Open(index); err != nil {
		return nil, err
	}
	if err := bus.ForceSlaveAddress(slave); err != nil {
		bus.Close()
		return nil, fmt.Errorf("i2c-%d: 0x%02x: %w", index, slave, err)
	}
	return New(bus), nil
}

func New(bus Bus) *Registers { return &Registers{bus} }

// ReadReg16 doesn't retry; a bus fault is returned as is.
func (r *Registers) ReadReg16(addr uint16) (uint16, error) {
	var data i2c.SMBusData
	mutex.Lock()
	defer mutex.Unlock()
	data[0] = byte(addr >> 8)
	data[1] = byte(addr)
	if err := r.bus.Do(i2c.Write, AddrCommand, i2c.WordData,
		&data); err != nil {
		return 0, err
	}
	if err := r.bus.Do(i2c.Read, DataCommand, i2c.WordData,
		&data); err != nil {
		return 0, err
	}
	return uint16(data[0])<<8 | uint16(data[1]), nil
}

func (r *Registers) Close() error { return r.bus.Close() }
