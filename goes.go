// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package goes, combined with a set of switch register commands, provides a
// busybox style tool to inspect RTL83xx RRCP switches.
package goes

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/platinasystems/goes-rrcp/cmd"
	"github.com/platinasystems/goes-rrcp/lang"
)

type ByName map[string]cmd.Cmd

type Goes struct {
	NAME    string
	USAGE   string
	APROPOS lang.Alt
	MAN     lang.Alt
	ByName  ByName

	// Stdout receives helper text; nil means os.Stdout.
	Stdout io.Writer

	cache cache
}

type cache struct {
	sync.Mutex

	builtins map[string]func(...string) error
	names    []string
}

// Plot commands on the goes map.
func (g *Goes) Plot(cmds ...cmd.Cmd) {
	if g.ByName == nil {
		g.ByName = make(ByName)
	}
	for _, v := range cmds {
		k := v.String()
		if _, found := g.ByName[k]; found {
			panic(fmt.Errorf("%s: duplicate", k))
		}
		g.ByName[k] = v
	}
}

func (g *Goes) String() string { return g.NAME }

func (g *Goes) Builtins() map[string]func(...string) error {
	g.cache.Lock()
	defer g.cache.Unlock()
	if len(g.cache.builtins) == 0 {
		g.cache.builtins = map[string]func(...string) error{
			"apropos": g.apropos,
			"help":    g.help,
			"man":     g.man,
			"usage":   g.usage,
		}
	}
	return g.cache.builtins
}

func (g *Goes) Names() []string {
	g.cache.Lock()
	defer g.cache.Unlock()
	if got, want := len(g.cache.names), len(g.ByName); got != want {
		g.cache.names = make([]string, 0, want)
		for k := range g.ByName {
			g.cache.names = append(g.cache.names, k)
		}
		sort.Strings(g.cache.names)
	}
	return g.cache.names
}

// Main runs the args[0] command. When run w/o args this uses os.Args[1:].
//
// If the args have "-help", "-apropos", "-man", or "-usage", this runs the
// respective helper instead of the command.
func (g *Goes) Main(args ...string) error {
	if len(args) == 0 {
		args = os.Args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("%s: missing COMMAND\n%s", g, Usage(g))
	}
	cmd.Swap(args)
	if f, found := g.Builtins()[args[0]]; found {
		return f(args[1:]...)
	}
	v, found := g.ByName[args[0]]
	if !found {
		return fmt.Errorf("%s: command not found", args[0])
	}
	return v.Main(args[1:]...)
}

func (g *Goes) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}
