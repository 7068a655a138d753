// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is a goes machine to inspect RTL83xx RRCP switches.
package main

import (
	"fmt"
	"os"

	goes "github.com/platinasystems/goes-rrcp"
	"github.com/platinasystems/goes-rrcp/cmd/dumpregs"
	"github.com/platinasystems/goes-rrcp/cmd/showconfig"
	"github.com/platinasystems/goes-rrcp/cmd/switchtypes"
	"github.com/platinasystems/goes-rrcp/lang"
)

const Name = "goes-rrcp"

func Goes() *goes.Goes {
	g := &goes.Goes{
		NAME: Name,
		APROPOS: lang.Alt{
			lang.EnUS: "RTL83xx RRCP switch configuration dump",
		},
	}
	g.Plot(showconfig.Command{},
		dumpregs.Command{},
		switchtypes.Command{},
	)
	return g
}

func main() {
	if err := Goes().Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
