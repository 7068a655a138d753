// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dumpregs

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinasystems/goes-rrcp/cmd/showconfig"
	"github.com/platinasystems/goes-rrcp/internal/test"
	"github.com/platinasystems/goes-rrcp/swconfig"
	"github.com/platinasystems/goes-rrcp/switchtype"
	"github.com/platinasystems/goes-rrcp/transport/regfile"
)

func TestReplay(t *testing.T) {
	assert := test.Assert{TB: t}
	f := make(regfile.File)
	for i, addr := range swconfig.Addresses() {
		f[addr] = uint16(i * 0x0101)
	}
	// an unread register isn't dumped
	f[0x7fff] = 1
	src := new(bytes.Buffer)
	_, err := f.WriteTo(src)
	assert.Nil(err)
	dir := t.TempDir()
	fn := filepath.Join(dir, "src")
	assert.Nil(ioutil.WriteFile(fn, src.Bytes(), 0644))

	dump := new(bytes.Buffer)
	assert.Nil(Command{Stdout: dump}.Main("-from", "file:"+fn,
		"-switch", "dlink-des1024d"))
	assert.False(strings.HasPrefix(dump.String(), "#"))
	assert.Lacks(dump.String(), "0x7fff 0x0001")
	replay, err := regfile.Parse(bytes.NewReader(dump.Bytes()))
	assert.Nil(err)
	for _, addr := range swconfig.Addresses() {
		if _, found := replay[addr]; !found {
			t.Fatalf("0x%04x: missing", addr)
		}
	}

	fn2 := filepath.Join(dir, "dump")
	assert.Nil(ioutil.WriteFile(fn2, dump.Bytes(), 0644))
	var x, y bytes.Buffer
	assert.Nil(showconfig.Command{Stdout: &x}.Main("-from", "file:"+fn,
		"-switch", "dlink-des1024d"))
	assert.Nil(showconfig.Command{Stdout: &y}.Main("-from", "file:"+fn2,
		"-switch", "dlink-des1024d"))
	assert.Equal(y.String(), x.String())
}

func TestHeader(t *testing.T) {
	assert := test.Assert{TB: t}
	f := make(regfile.File)
	for _, addr := range swconfig.Addresses() {
		f[addr] = 0
	}
	buf := new(bytes.Buffer)
	_, err := f.WriteTo(buf)
	assert.Nil(err)
	fn := filepath.Join(t.TempDir(), "regs")
	assert.Nil(ioutil.WriteFile(fn, buf.Bytes(), 0644))

	buf.Reset()
	assert.Nil(Command{Stdout: buf}.Main("-header", "-from", "file:"+fn))
	lines := strings.SplitN(buf.String(), "\n", 4)
	assert.Equal(lines[0],
		"# generic-rtl8326 rtl8326 registers from file:"+fn)
	assert.Equal(lines[1], "# ADDR  VALUE")
	assert.Equal(lines[2], "0x0200 0x0000")
}

func TestErrors(t *testing.T) {
	assert := test.Assert{TB: t}
	c := Command{Stdout: ioutil.Discard}
	assert.Error(c.Main(), "dump-regs: SOURCE: missing")
	assert.Error(c.Main("-from", "file:x", "-switch", "acme"),
		switchtype.ErrUnknown)
	fn := filepath.Join(t.TempDir(), "regs")
	assert.Nil(ioutil.WriteFile(fn, nil, 0644))
	assert.Error(c.Main("-from", "file:"+fn), regfile.ErrNoRegister)
}

func Example() {
	c := Command{}
	fmt.Println(c)
	fmt.Println(c.Apropos())
	// Output:
	// dump-regs
	// print the configuration registers of an RRCP switch
}
