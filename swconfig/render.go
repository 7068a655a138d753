// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package swconfig

import (
	"strconv"
	"strings"

	"github.com/platinasystems/goes-rrcp/switchtype"
)

// InterfaceLabel prefaces the logical port number of interface stanzas.
const InterfaceLabel = "FastEthernet0/"

// Render the snapshot as configuration text of less than limit bytes; see
// Buffer.
func Render(s *Snapshot, st *switchtype.SwitchType, limit int) string {
	b := NewBuffer(limit)
	s.WriteConfig(b, st)
	return b.String()
}

func no(off bool) string {
	if off {
		return "no "
	}
	return ""
}

// WriteConfig appends the configuration directives to the buffer. The
// order and wording of the directives is stable so that dumps may be
// archived and compared.
func (s *Snapshot) WriteConfig(b *Buffer, st *switchtype.SwitchType) {
	b.Printf("!\n")
	b.Printf("version %s\n", st.ChipName)
	b.Printf("!\n")

	b.Printf("mac-address-table aging-time %d\n", s.MACAging().Seconds())
	b.Printf("!\n")

	rrcp := s.RRCP()
	b.Printf("%srrcp enable\n", no(!rrcp.Enable))
	b.Printf("%srrcp echo enable\n", no(!rrcp.EchoEnable))
	b.Printf("%srrcp loop-detect enable\n", no(!rrcp.LoopDetect))
	b.Printf("!\n")

	vlan := s.VLAN()
	b.Printf("%svlan enable\n", no(!vlan.Enable))
	b.Printf("%svlan dot1q enable\n", no(!vlan.Dot1Q))
	b.Printf("%svlan leaky arp\n", no(!vlan.ARPLeaky))
	b.Printf("%svlan leaky unicast\n", no(!vlan.UnicastLeaky))
	b.Printf("%svlan leaky multicast\n", no(!vlan.MulticastLeaky))
	b.Printf("%svlan untagged_frames drop\n", no(!vlan.DropUntagged))
	b.Printf("%svlan invalid_vid drop\n", no(!vlan.IngressFiltering))
	b.Printf("!\n")

	qos := s.QoS()
	b.Printf("%sqos tos enable\n", no(!qos.ToS))
	b.Printf("%sqos dot1p enable\n", no(!qos.Dot1P))
	b.Printf("%sqos flow-control-jam enable\n", no(!qos.FlowControlJam))
	b.Printf("wrr-queue ratio %s\n", qos.WRR)
	b.Printf("!\n")

	pg := s.PortGlobal()
	b.Printf("%sflowcontrol dot3x enable\n", no(!pg.Dot3x))
	b.Printf("%sflowcontrol backpressure enable\n", no(!pg.Backpressure))
	b.Printf("%sstorm-control broadcast enable\n",
		no(!pg.BroadcastStormControl))
	b.Printf("%sstorm-control broadcast strict\n",
		no(!pg.BroadcastStormStrict))
	b.Printf("%sstorm-control multicast strict\n",
		no(!pg.MulticastStormStrict))
	b.Printf("!\n")

	var (
		shutdown     = s.Shutdown()
		trunks       = s.Trunks()
		sniffers     = s.Sniffers()
		sniffedRx    = s.SniffedRx()
		sniffedTx    = s.SniffedTx()
		noLearning   = s.LearningDisabled()
		noRRCP       = s.RRCPDisabled()
		highPriority = s.HighPriority()
	)
	for _, port := range st.Ports() {
		phys := st.Physical(port)
		trunk := trunks.Has(phys)
		b.Printf("interface %s%d\n", InterfaceLabel, port)
		b.Printf(" %sshutdown\n", no(!shutdown.Has(phys)))
		if trunk {
			b.Printf(" switchport trunk allowed vlan %s\n",
				s.trunkVLANs(phys))
		} else {
			b.Printf(" switchport access vlan %d\n",
				s.VID(s.PortVLANIndex(phys)))
		}
		if trunk {
			b.Printf(" switchport mode trunk\n")
		} else {
			b.Printf(" switchport mode access\n")
		}
		rx, tx := s.Bandwidth(phys)
		b.Printf(" rate-limit input %s\n", rx)
		b.Printf(" rate-limit output %s\n", tx)
		if sniffers.Has(phys) {
			for _, port2 := range st.Ports() {
				phys2 := st.Physical(port2)
				rx, tx := sniffedRx.Has(phys2), sniffedTx.Has(phys2)
				switch {
				case rx && tx:
					b.Printf(" port monitor %s%d\n",
						InterfaceLabel, port2)
				case rx:
					b.Printf(" port monitor %s%d rx\n",
						InterfaceLabel, port2)
				case tx:
					b.Printf(" port monitor %s%d tx\n",
						InterfaceLabel, port2)
				}
			}
		}
		b.Printf(" %smac learning enable\n", no(noLearning.Has(phys)))
		b.Printf(" %srrcp enable\n", no(noRRCP.Has(phys)))
		if highPriority.Has(phys) {
			b.Printf(" mls qos cos 7\n")
		} else {
			b.Printf(" mls qos cos 0\n")
		}
		if m := s.Media(phys); m != MediaNone {
			b.Printf(" speed %s\n duplex %s\n", m.Speed(), m.Duplex())
		}
		b.Printf("!\n")
	}
}

// trunkVLANs lists the VIDs of every VLAN slot with the port, in slot
// order, or none.
func (s *Snapshot) trunkVLANs(phys int) string {
	var vids []string
	for slot := 0; slot < NumVLANSlots; slot++ {
		if s.VLANMembers(slot).Has(phys) {
			vids = append(vids, strconv.Itoa(s.VID(slot)))
		}
	}
	if len(vids) == 0 {
		return "none"
	}
	return strings.Join(vids, ",")
}
