// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dumpregs

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/goes-rrcp/lang"
	"github.com/platinasystems/goes-rrcp/swconfig"
	"github.com/platinasystems/goes-rrcp/switchtype"
	"github.com/platinasystems/goes-rrcp/transport"
	"github.com/platinasystems/goes-rrcp/transport/regfile"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
)

type Command struct {
	// Stdout defaults to os.Stdout
	Stdout io.Writer
}

func (Command) String() string { return "dump-regs" }

func (Command) Usage() string {
	return "dump-regs [-header] -from SOURCE [-switch NAME] [-switch-types FILE]"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print the configuration registers of an RRCP switch",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Read the configuration registers of an RTL83xx switch, as
	show-config does, and print them as a register file that may be
	given to show-config with "-from file:PATH".

	The SOURCE and options are those of show-config.

OPTIONS
	-header	print a comment header, the default on a terminal`,
	}
}

func (c Command) Main(args ...string) error {
	if err := c.main(args...); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

func (c Command) main(args ...string) error {
	flag, args := flags.New(args, "-header")
	parm, args := parms.New(args, "-switch", "-from", "-switch-types")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	source := parm.ByName["-from"]
	if len(source) == 0 {
		return fmt.Errorf("SOURCE: missing")
	}
	name := parm.ByName["-switch"]
	if len(name) == 0 {
		name = switchtype.Default
	}
	reg, err := switchtype.Open(parm.ByName["-switch-types"])
	if err != nil {
		return err
	}
	st, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	r, closer, err := transport.Open(source)
	if err != nil {
		return err
	}
	defer closer.Close()
	rec := regfile.NewRecorder(r)
	if _, err = swconfig.Read(rec, st); err != nil {
		log.Print("err", st, ": ", err)
		return err
	}
	w := c.stdout()
	header := flag.ByName["-header"]
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		header = true
	}
	if header {
		fmt.Fprintf(w, "# %s %s registers from %s\n# ADDR  VALUE\n",
			st, st.ChipName, source)
	}
	_, err = rec.File.WriteTo(w)
	return err
}

func (c Command) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
