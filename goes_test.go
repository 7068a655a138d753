// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/platinasystems/goes-rrcp/cmd"
	"github.com/platinasystems/goes-rrcp/internal/test"
	"github.com/platinasystems/goes-rrcp/lang"
)

type echo struct {
	args *[]string
}

func (echo) String() string { return "echo" }
func (echo) Usage() string  { return "echo [STRING]..." }

func (echo) Apropos() lang.Alt {
	return lang.Alt{lang.EnUS: "print arguments"}
}

func (echo) Man() lang.Alt {
	return lang.Alt{lang.EnUS: `
DESCRIPTION
	Print the arguments.`}
}

func (c echo) Main(args ...string) error {
	*c.args = args
	return nil
}

type secret struct{ echo }

func (secret) String() string { return "secret" }
func (secret) Kind() cmd.Kind { return cmd.Hidden }

func newGoes(w *bytes.Buffer) (*Goes, *[]string) {
	args := new([]string)
	g := &Goes{NAME: "goes-test", Stdout: w}
	g.Plot(echo{args}, secret{echo{args}})
	return g, args
}

func TestDispatch(t *testing.T) {
	assert := test.Assert{TB: t}
	g, args := newGoes(nil)
	assert.Nil(g.Main("echo", "hello", "world"))
	assert.Equal(strings.Join(*args, " "), "hello world")
	assert.Error(g.Main("cat"), "cat: command not found")
}

func TestPlotDuplicate(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic")
		} else {
			test.Assert{TB: t}.Equal(fmt.Sprint(r), "echo: duplicate")
		}
	}()
	g, _ := newGoes(nil)
	g.Plot(echo{})
}

func TestHelpers(t *testing.T) {
	assert := test.Assert{TB: t}
	buf := new(bytes.Buffer)
	g, args := newGoes(buf)

	assert.Nil(g.Main("echo", "-usage"))
	assert.Equal(buf.String(), "usage:\techo [STRING]...\n")
	assert.True(*args == nil)

	buf.Reset()
	assert.Nil(g.Main("--help", "echo"))
	assert.Equal(buf.String(), "usage:\techo [STRING]...\n")

	buf.Reset()
	assert.Nil(g.Main("apropos"))
	assert.Equal(buf.String(), "echo            print arguments\n")

	buf.Reset()
	assert.Nil(g.Main("apropos", "secret"))
	assert.Equal(buf.String(), "secret          print arguments\n")

	buf.Reset()
	assert.Nil(g.Main("man", "echo"))
	assert.Equal(buf.String(), `NAME
	echo - print arguments

SYNOPSIS
	echo [STRING]...

DESCRIPTION
	Print the arguments.
`)

	buf.Reset()
	assert.Nil(g.Main("usage"))
	assert.Contains(buf.String(), "\tgoes-test COMMAND [ ARGS ]...")

	assert.Error(g.Main("man", "cat"), "cat: not found")
	assert.Error(g.Main("usage", "cat"), "cat: not found")
	assert.Error(g.Main("apropos", "cat"), "cat: not found")
}
