// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package switchtypes

import (
	"fmt"
	"io"
	"os"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/goes-rrcp/internal/accumulate"
	"github.com/platinasystems/goes-rrcp/lang"
	"github.com/platinasystems/goes-rrcp/switchtype"
	"github.com/platinasystems/parms"
)

type Command struct {
	// Stdout defaults to os.Stdout
	Stdout io.Writer
}

func (Command) String() string { return "switch-types" }

func (Command) Usage() string {
	return "switch-types [-v] [-switch-types FILE]"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "list the known RRCP switch variants",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print the name, chip, and number of ports of each switch variant
	that show-config and dump-regs may be given with -switch.

OPTIONS
	-v	also print the vendor, model, and the physical index of
		each logical port
	-switch-types FILE
		also list the variants of this YAML file`,
	}
}

func (c Command) Main(args ...string) error {
	flag, args := flags.New(args, "-v")
	parm, args := parms.New(args, "-switch-types")
	if len(args) > 0 {
		return fmt.Errorf("%s: %v: unexpected", c, args)
	}
	reg, err := switchtype.Open(parm.ByName["-switch-types"])
	if err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	acc := accumulate.New(c.stdout())
	for _, name := range reg.Names() {
		st, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(acc, "%-20s %-9s %2d", st.Name, st.ChipName,
			st.NumPorts)
		if flag.ByName["-v"] {
			fmt.Fprintf(acc, " %-9s %-10s %v", st.Vendor, st.Model,
				st.Order())
		}
		fmt.Fprintln(acc)
	}
	_, err = acc.Tuple()
	return err
}

func (c Command) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
