// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package swconfig

import "github.com/platinasystems/goes-rrcp/portset"

// NumVLANSlots is the size of the chip's VLAN table.
const NumVLANSlots = 32

const vidMask = 0xfff

// block is a run of consecutive registers read into the snapshot.
type block struct {
	name  string
	base  uint16
	words func(*Snapshot) []uint16
	// fix is applied right after the block is read to mask out ports
	// absent on the switch.
	fix func(*Snapshot, portset.Set)
}

// blocks are read in this order.
var blocks = []block{
	{
		name:  "rrcp_config",
		base:  0x0200,
		words: func(s *Snapshot) []uint16 { return s.rrcpConfig[:] },
	},
	{
		name:  "rrcp_byport_disable",
		base:  0x0201,
		words: func(s *Snapshot) []uint16 { return s.rrcpByportDisable[:] },
		fix: func(s *Snapshot, m portset.Set) {
			maskBitmap(s.rrcpByportDisable[:], m)
		},
	},
	{
		name:  "vlan",
		base:  0x030b,
		words: func(s *Snapshot) []uint16 { return s.vlan[:] },
	},
	{
		name:  "vlan_port_output_tag",
		base:  0x0319,
		words: func(s *Snapshot) []uint16 { return s.vlanPortOutputTag[:] },
	},
	{
		// bitmap lo, bitmap hi, vid; for each slot
		name:  "vlan_entry",
		base:  0x031d,
		words: func(s *Snapshot) []uint16 { return s.vlanEntry[:] },
		fix: func(s *Snapshot, m portset.Set) {
			for slot := 0; slot < NumVLANSlots; slot++ {
				w := s.vlanEntry[3*slot : 3*slot+3]
				maskBitmap(w[:2], m)
				w[2] &= vidMask
			}
		},
	},
	{
		name:  "vlan_port_insert_vid",
		base:  0x037d,
		words: func(s *Snapshot) []uint16 { return s.vlanPortInsertVID[:] },
		fix: func(s *Snapshot, m portset.Set) {
			maskBitmap(s.vlanPortInsertVID[:], m)
		},
	},
	{
		name:  "bandwidth",
		base:  0x020a,
		words: func(s *Snapshot) []uint16 { return s.bandwidth[:] },
	},
	{
		name:  "port_monitor",
		base:  0x0219,
		words: func(s *Snapshot) []uint16 { return s.portMonitor[:] },
		fix: func(s *Snapshot, m portset.Set) {
			for i := 0; i < len(s.portMonitor); i += 2 {
				maskBitmap(s.portMonitor[i:i+2], m)
			}
		},
	},
	{
		name:  "alt",
		base:  0x0300,
		words: func(s *Snapshot) []uint16 { return s.alt[:] },
		fix: func(s *Snapshot, m portset.Set) {
			maskBitmap(s.alt[1:], m)
		},
	},
	{
		name:  "qos_config",
		base:  0x0400,
		words: func(s *Snapshot) []uint16 { return s.qosConfig[:] },
	},
	{
		name:  "qos_port_priority",
		base:  0x0401,
		words: func(s *Snapshot) []uint16 { return s.qosPortPriority[:] },
		fix: func(s *Snapshot, m portset.Set) {
			maskBitmap(s.qosPortPriority[:], m)
		},
	},
	{
		name:  "port_config_global",
		base:  0x0607,
		words: func(s *Snapshot) []uint16 { return s.portConfigGlobal[:] },
	},
	{
		name:  "port_disable",
		base:  0x0608,
		words: func(s *Snapshot) []uint16 { return s.portDisable[:] },
		fix: func(s *Snapshot, m portset.Set) {
			maskBitmap(s.portDisable[:], m)
		},
	},
	{
		name:  "port_config",
		base:  0x060a,
		words: func(s *Snapshot) []uint16 { return s.portConfig[:] },
	},
}

// Register is one address of the read pass.
type Register struct {
	Block string
	Addr  uint16
}

// Registers returns every register of a read pass in read order.
func Registers() []Register {
	var regs []Register
	var s Snapshot
	for _, b := range blocks {
		for i := range b.words(&s) {
			regs = append(regs, Register{b.name, b.base + uint16(i)})
		}
	}
	return regs
}

// Addresses returns the register addresses of a read pass in read order.
func Addresses() []uint16 {
	regs := Registers()
	addrs := make([]uint16, len(regs))
	for i, r := range regs {
		addrs[i] = r.Addr
	}
	return addrs
}

// bitmap returns the port set of a one or two word register bitmap; the
// first word has ports 0 through 15.
func bitmap(w []uint16) portset.Set {
	var v uint32
	for i, x := range w {
		if i > 1 {
			break
		}
		v |= uint32(x) << (16 * uint(i))
	}
	return portset.Of(v)
}

func maskBitmap(w []uint16, m portset.Set) {
	v := bitmap(w).Intersect(m).Bits()
	for i := range w {
		if i > 1 {
			break
		}
		w[i] = uint16(v >> (16 * uint(i)))
	}
}
