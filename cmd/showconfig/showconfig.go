// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package showconfig

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/platinasystems/goes-rrcp/archive"
	"github.com/platinasystems/goes-rrcp/internal/metrics"
	"github.com/platinasystems/goes-rrcp/lang"
	"github.com/platinasystems/goes-rrcp/swconfig"
	"github.com/platinasystems/goes-rrcp/switchtype"
	"github.com/platinasystems/goes-rrcp/transport"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
)

type Command struct {
	// Stdout defaults to os.Stdout
	Stdout io.Writer
}

func (Command) String() string { return "show-config" }

func (Command) Usage() string {
	return "show-config -from SOURCE [OPTION]..."
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print the running configuration of an RRCP switch",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Read the configuration registers of an RTL83xx switch and print
	them as router style configuration.

SOURCES
	file:PATH	register file, as printed by dump-regs
	i2c:BUS.ADDR	SMBus bridge at /dev/i2c-BUS, slave ADDR
	redis:HOST:PORT[/HASH]
		redis hash of register values, default rrcp.regs

OPTIONS
	-switch NAME	switch variant, default generic-rtl8326
	-switch-types FILE
		YAML file of additional switch variants
	-limit N	configuration size limit, default 32768;
		directives beyond it are dropped, 0 is unlimited
	-archive HOST:PORT
		also store the configuration in this redis server
	-archive-key KEY
		archive hash, default rrcp.config
	-metrics FILE	write node_exporter textfile metrics`,
	}
}

func (c Command) Main(args ...string) error {
	if err := c.main(args...); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

func (c Command) main(args ...string) error {
	parm, args := parms.New(args, "-switch", "-from", "-limit",
		"-switch-types", "-archive", "-archive-key", "-metrics")
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
	limit := swconfig.DefaultLimit
	if s := parm.ByName["-limit"]; len(s) > 0 {
		var err error
		if limit, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("-limit: %w", err)
		}
	}
	reg, err := switchtype.Open(parm.ByName["-switch-types"])
	if err != nil {
		return err
	}
	st, err := reg.Lookup(name)
	if err != nil {
		return err
	}

	fn := parm.ByName["-metrics"]
	b, err := dump(source, st, limit)
	if len(fn) > 0 {
		if merr := metrics.WriteTextfile(fn); merr != nil {
			log.Print("err", fn, ": ", merr)
		}
	}
	if err != nil {
		return err
	}
	if n := b.Dropped(); n > 0 {
		log.Print("info", st, ": dropped ", n,
			" directives beyond ", limit, " bytes")
	}
	if _, err = b.WriteTo(c.stdout()); err != nil {
		return err
	}
	if addr := parm.ByName["-archive"]; len(addr) > 0 {
		conn, err := archive.Dial(addr)
		if err != nil {
			return err
		}
		defer conn.Close()
		return archive.Publish(conn, parm.ByName["-archive-key"],
			archive.NewRecord(st.Name, b.String(), b.Dropped()))
	}
	return nil
}

func dump(source string, st *switchtype.SwitchType,
	limit int) (*swconfig.Buffer, error) {
	t0 := time.Now()
	r, closer, err := transport.Open(source)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	s, err := swconfig.Read(transport.Counting{
		Reader16: r,
		Reads:    metrics.RegisterReadsTotal,
		Errors:   metrics.RegisterReadErrorsTotal,
	}, st)
	if err != nil {
		log.Print("err", st, ": ", err)
		return nil, err
	}
	b := swconfig.NewBuffer(limit)
	s.WriteConfig(b, st)
	metrics.Dump(b.Len(), b.Dropped(), time.Since(t0))
	return b, nil
}

func (c Command) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
