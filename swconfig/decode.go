// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package swconfig

import "github.com/platinasystems/goes-rrcp/portset"

// Register bit layout; bit 0 is the least significant.
const (
	// rrcp_config
	rrcpDisableBit = 1 << 0
	echoDisableBit = 1 << 1
	loopEnableBit  = 1 << 2

	// vlan word 0
	vlanEnableBit           = 1 << 0
	vlanUnicastLeakyBit     = 1 << 1
	vlanMulticastLeakyBit   = 1 << 2
	vlanARPLeakyBit         = 1 << 3
	vlanDot1QBit            = 1 << 4
	vlanDropUntaggedBit     = 1 << 5
	vlanIngressFilteringBit = 1 << 6
	vlanIndexMask           = 0x1f

	// alt word 0
	macAgingDisableBit = 1 << 0
	macAgingFastBit    = 1 << 1

	// qos_config
	tosEnableBit      = 1 << 0
	dot1pEnableBit    = 1 << 1
	flowControlJamBit = 1 << 2
	wrrRatioShift     = 3
	wrrRatioMask      = 0x3

	// port_config_global
	dot3xDisableBit          = 1 << 0
	backpressureDisableBit   = 1 << 1
	broadcastStormDisableBit = 1 << 2
	broadcastStormStrictBit  = 1 << 3
	multicastStormStrictBit  = 1 << 4

	// bandwidth byte
	rxRateShift = 0
	txRateShift = 4
	rateMask    = 0x7

	// port_config byte
	media10HalfBit  = 1 << 0
	media10FullBit  = 1 << 1
	media100HalfBit = 1 << 2
	media100FullBit = 1 << 3
	autonegBit      = 1 << 6
)

// portByte returns the byte of a physical port in a register table with
// two ports per word, the even port in the low byte.
func portByte(w []uint16, phys int) uint8 {
	if phys < 0 || phys/2 >= len(w) {
		return 0
	}
	return uint8(w[phys/2] >> (8 * uint(phys%2)))
}

type RRCPConfig struct {
	Enable     bool
	EchoEnable bool
	LoopDetect bool
}

func (s *Snapshot) RRCP() RRCPConfig {
	w := s.rrcpConfig[0]
	return RRCPConfig{
		Enable:     w&rrcpDisableBit == 0,
		EchoEnable: w&echoDisableBit == 0,
		LoopDetect: w&loopEnableBit != 0,
	}
}

// RRCPDisabled are the ports that ignore RRCP.
func (s *Snapshot) RRCPDisabled() portset.Set {
	return bitmap(s.rrcpByportDisable[:])
}

type VLANConfig struct {
	Enable           bool
	UnicastLeaky     bool
	MulticastLeaky   bool
	ARPLeaky         bool
	Dot1Q            bool
	DropUntagged     bool
	IngressFiltering bool
}

func (s *Snapshot) VLAN() VLANConfig {
	w := s.vlan[0]
	return VLANConfig{
		Enable:           w&vlanEnableBit != 0,
		UnicastLeaky:     w&vlanUnicastLeakyBit != 0,
		MulticastLeaky:   w&vlanMulticastLeakyBit != 0,
		ARPLeaky:         w&vlanARPLeakyBit != 0,
		Dot1Q:            w&vlanDot1QBit != 0,
		DropUntagged:     w&vlanDropUntaggedBit != 0,
		IngressFiltering: w&vlanIngressFilteringBit != 0,
	}
}

// PortVLANIndex is the VLAN table slot of the port's native VLAN.
func (s *Snapshot) PortVLANIndex(phys int) int {
	return int(portByte(s.vlan[1:], phys) & vlanIndexMask)
}

// VLANMembers of the VLAN table slot.
func (s *Snapshot) VLANMembers(slot int) portset.Set {
	if slot < 0 || slot >= NumVLANSlots {
		return 0
	}
	return bitmap(s.vlanEntry[3*slot : 3*slot+2])
}

// VID of the VLAN table slot, 0 through 4095.
func (s *Snapshot) VID(slot int) int {
	if slot < 0 || slot >= NumVLANSlots {
		return 0
	}
	return int(s.vlanEntry[3*slot+2] & vidMask)
}

// Trunks are the ports that insert a VLAN tag; the others are in access
// mode.
func (s *Snapshot) Trunks() portset.Set {
	return bitmap(s.vlanPortInsertVID[:])
}

// Rate is a bandwidth limit index.
type Rate uint8

var rateText = [...]string{"100M", "128K", "256K", "512K", "1M", "2M", "4M", "8M"}

func (r Rate) String() string { return rateText[r&rateMask] }

// Bandwidth returns the ingress and egress rate limits of the port.
func (s *Snapshot) Bandwidth(phys int) (rx, tx Rate) {
	b := portByte(s.bandwidth[:], phys)
	return Rate((b >> rxRateShift) & rateMask),
		Rate((b >> txRateShift) & rateMask)
}

// Sniffers are the mirror destination ports.
func (s *Snapshot) Sniffers() portset.Set { return bitmap(s.portMonitor[0:2]) }

// SniffedRx are the ports with mirrored ingress.
func (s *Snapshot) SniffedRx() portset.Set { return bitmap(s.portMonitor[2:4]) }

// SniffedTx are the ports with mirrored egress.
func (s *Snapshot) SniffedTx() portset.Set { return bitmap(s.portMonitor[4:6]) }

type Aging uint8

const (
	AgingNormal Aging = iota
	AgingFast
	AgingDisabled
)

// Seconds of the MAC address table aging time.
func (a Aging) Seconds() int {
	switch a {
	case AgingDisabled:
		return 0
	case AgingFast:
		return 12
	}
	return 300
}

func (s *Snapshot) MACAging() Aging {
	w := s.alt[0]
	switch {
	case w&macAgingDisableBit != 0:
		return AgingDisabled
	case w&macAgingFastBit != 0:
		return AgingFast
	}
	return AgingNormal
}

// LearningDisabled are the ports that don't learn source MAC addresses.
func (s *Snapshot) LearningDisabled() portset.Set { return bitmap(s.alt[1:]) }

// WRRRatio is the high to low priority queue weight index.
type WRRRatio uint8

var wrrRatioText = [...]string{"4:1", "8:1", "16:1", "1:0"}

func (r WRRRatio) String() string { return wrrRatioText[r&wrrRatioMask] }

type QoSConfig struct {
	ToS            bool
	Dot1P          bool
	FlowControlJam bool
	WRR            WRRRatio
}

func (s *Snapshot) QoS() QoSConfig {
	w := s.qosConfig[0]
	return QoSConfig{
		ToS:            w&tosEnableBit != 0,
		Dot1P:          w&dot1pEnableBit != 0,
		FlowControlJam: w&flowControlJamBit != 0,
		WRR:            WRRRatio((w >> wrrRatioShift) & wrrRatioMask),
	}
}

// HighPriority are the ports forced to class of service 7.
func (s *Snapshot) HighPriority() portset.Set {
	return bitmap(s.qosPortPriority[:])
}

// PortGlobalConfig has the flow and storm control features. The chip
// stores the first three as disable bits.
type PortGlobalConfig struct {
	Dot3x                 bool
	Backpressure          bool
	BroadcastStormControl bool
	BroadcastStormStrict  bool
	MulticastStormStrict  bool
}

func (s *Snapshot) PortGlobal() PortGlobalConfig {
	w := s.portConfigGlobal[0]
	return PortGlobalConfig{
		Dot3x:                 w&dot3xDisableBit == 0,
		Backpressure:          w&backpressureDisableBit == 0,
		BroadcastStormControl: w&broadcastStormDisableBit == 0,
		BroadcastStormStrict:  w&broadcastStormStrictBit != 0,
		MulticastStormStrict:  w&multicastStormStrictBit != 0,
	}
}

// Shutdown are the administratively disabled ports.
func (s *Snapshot) Shutdown() portset.Set { return bitmap(s.portDisable[:]) }

type Media uint8

const (
	MediaNone Media = iota
	MediaAuto
	Media100Full
	Media100Half
	Media10Full
	Media10Half
)

func (m Media) Speed() string {
	switch m {
	case MediaAuto:
		return "auto"
	case Media100Full, Media100Half:
		return "100"
	case Media10Full, Media10Half:
		return "10"
	}
	return ""
}

func (m Media) Duplex() string {
	switch m {
	case MediaAuto:
		return "auto"
	case Media100Full, Media10Full:
		return "full"
	case Media100Half, Media10Half:
		return "half"
	}
	return ""
}

// Media returns the port's speed and duplex selection. Should the chip
// have more than one selector set, the first of autoneg, 100 full, 100
// half, 10 full, and 10 half wins.
func (s *Snapshot) Media(phys int) Media {
	b := portByte(s.portConfig[:], phys)
	switch {
	case b&autonegBit != 0:
		return MediaAuto
	case b&media100FullBit != 0:
		return Media100Full
	case b&media100HalfBit != 0:
		return Media100Half
	case b&media10FullBit != 0:
		return Media10Full
	case b&media10HalfBit != 0:
		return Media10Half
	}
	return MediaNone
}
