// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package swconfig snapshots the configuration registers of an RTL83xx
// switch and renders them as router style configuration text.
//
// A Snapshot is made only by Read and is read-only thereafter. Its raw
// register words never leave this package; the decoding accessors in
// decode.go are the only view of them.
package swconfig

// Snapshot is the configuration register image of one switch.
type Snapshot struct {
	nports int

	rrcpConfig        [1]uint16
	rrcpByportDisable [2]uint16
	vlan              [14]uint16
	vlanPortOutputTag [4]uint16
	vlanEntry         [3 * NumVLANSlots]uint16
	vlanPortInsertVID [2]uint16
	bandwidth         [16]uint16
	portMonitor       [6]uint16
	alt               [2]uint16
	qosConfig         [1]uint16
	qosPortPriority   [2]uint16
	portConfigGlobal  [1]uint16
	portDisable       [2]uint16
	portConfig        [13]uint16
}

// NumPorts of the switch this was read from.
func (s *Snapshot) NumPorts() int { return s.nports }
