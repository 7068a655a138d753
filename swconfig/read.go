// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package swconfig

import (
	"fmt"

	"github.com/platinasystems/goes-rrcp/switchtype"
	"github.com/platinasystems/goes-rrcp/transport"
)

// ReadError is the register fault that aborted a read pass.
type ReadError struct {
	Block string
	Addr  uint16
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: read 0x%04x: %v", e.Block, e.Addr, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Read every configuration register of the switch, in a fixed order, one
// register at a time. The first fault aborts the pass without a Snapshot;
// there are no retries.
func Read(r transport.Reader16, st *switchtype.SwitchType) (*Snapshot, error) {
	s := &Snapshot{nports: st.NumPorts}
	mask := st.Mask()
	for _, b := range blocks {
		w := b.words(s)
		for i := range w {
			addr := b.base + uint16(i)
			v, err := r.ReadReg16(addr)
			if err != nil {
				return nil, &ReadError{b.name, addr, err}
			}
			w[i] = v
		}
		if b.fix != nil {
			b.fix(s, mask)
		}
	}
	return s, nil
}
