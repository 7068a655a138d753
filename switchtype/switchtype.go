// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package switchtype describes the RTL83xx based switch variants: the number
// of ports, the chip name, and the permutation of front panel (logical)
// ports onto chip (physical) port indices.
package switchtype

import (
	"errors"
	"fmt"
	"sort"

	"github.com/platinasystems/goes-rrcp/portset"
)

var (
	ErrUnknown = errors.New("unknown switch type")
	ErrInvalid = errors.New("invalid switch type")
)

// Spec is the definition of a switch variant. PortOrder lists the physical
// index of logical ports 1 through Ports; an empty PortOrder is the
// identity mapping.
type Spec struct {
	Name      string `json:"name"`
	Vendor    string `json:"vendor,omitempty"`
	Model     string `json:"model,omitempty"`
	Chip      string `json:"chip"`
	Ports     int    `json:"ports"`
	PortOrder []int  `json:"port_order,omitempty"`
}

// SwitchType is immutable once made by New.
type SwitchType struct {
	Name     string
	Vendor   string
	Model    string
	ChipName string
	NumPorts int

	physical []int // by logical port - 1
	logical  []int // by physical index
}

func New(spec Spec) (*SwitchType, error) {
	if len(spec.Name) == 0 {
		return nil, fmt.Errorf("%w: missing name", ErrInvalid)
	}
	if len(spec.Chip) == 0 {
		return nil, fmt.Errorf("%w: %s: missing chip", ErrInvalid, spec.Name)
	}
	n := spec.Ports
	if n < 1 || n > portset.Cap {
		return nil, fmt.Errorf("%w: %s: %d ports not in [1, %d]",
			ErrInvalid, spec.Name, n, portset.Cap)
	}
	st := &SwitchType{
		Name:     spec.Name,
		Vendor:   spec.Vendor,
		Model:    spec.Model,
		ChipName: spec.Chip,
		NumPorts: n,
		physical: make([]int, n),
		logical:  make([]int, n),
	}
	if len(spec.PortOrder) == 0 {
		for i := range st.physical {
			st.physical[i] = i
			st.logical[i] = i + 1
		}
		return st, nil
	}
	if len(spec.PortOrder) != n {
		return nil, fmt.Errorf("%w: %s: port order has %d of %d ports",
			ErrInvalid, spec.Name, len(spec.PortOrder), n)
	}
	var seen portset.Set
	for i, phys := range spec.PortOrder {
		if phys < 0 || phys >= n {
			return nil, fmt.Errorf("%w: %s: port %d: physical %d not in [0, %d)",
				ErrInvalid, spec.Name, i+1, phys, n)
		}
		if seen.Has(phys) {
			return nil, fmt.Errorf("%w: %s: port %d: physical %d repeats",
				ErrInvalid, spec.Name, i+1, phys)
		}
		seen = seen.Add(phys)
		st.physical[i] = phys
		st.logical[phys] = i + 1
	}
	return st, nil
}

func (st *SwitchType) String() string { return st.Name }

// Physical returns the chip port index, 0 through NumPorts-1, of the
// logical port, 1 through NumPorts; or -1 if out of range.
func (st *SwitchType) Physical(logical int) int {
	if logical < 1 || logical > st.NumPorts {
		return -1
	}
	return st.physical[logical-1]
}

// Logical is the inverse of Physical.
func (st *SwitchType) Logical(physical int) int {
	if physical < 0 || physical >= st.NumPorts {
		return -1
	}
	return st.logical[physical]
}

// Order returns the physical index of each logical port.
func (st *SwitchType) Order() []int {
	return append([]int(nil), st.physical...)
}

// Ports returns the logical ports in ascending order.
func (st *SwitchType) Ports() []int {
	l := make([]int, st.NumPorts)
	for i := range l {
		l[i] = i + 1
	}
	return l
}

// Mask is the set of physical ports present on this variant.
func (st *SwitchType) Mask() portset.Set { return portset.All(st.NumPorts) }

// Registry maps variant names to SwitchTypes. A Registry made by Load
// falls back to its parent for names it doesn't define.
type Registry struct {
	parent *Registry
	byName map[string]*SwitchType
}

// Default names the variant of commands not given one.
const Default = "generic-rtl8326"

var builtin = mustRegistry(nil, []Spec{
	{Name: "generic-rtl8316b", Chip: "rtl8316b", Ports: 16},
	{Name: "generic-rtl8324", Chip: "rtl8324", Ports: 24},
	{Name: "generic-rtl8326", Chip: "rtl8326", Ports: 26},
	{Name: "asus-gigax1024p", Vendor: "asus", Model: "GigaX1024P",
		Chip: "rtl8326", Ports: 26},
	{Name: "compex-ps2216", Vendor: "compex", Model: "PS2216",
		Chip: "rtl8316b", Ports: 16},
	{Name: "dlink-des1016d", Vendor: "dlink", Model: "DES-1016D",
		Chip: "rtl8316b", Ports: 16},
	{Name: "dlink-des1024d", Vendor: "dlink", Model: "DES-1024D",
		Chip: "rtl8324", Ports: 24},
	{Name: "edimax-es3116p", Vendor: "edimax", Model: "ES-3116P",
		Chip: "rtl8316b", Ports: 16},
	{Name: "ovislink-fsh2402gt", Vendor: "ovislink", Model: "FSH2402GT",
		Chip: "rtl8326", Ports: 26},
	{Name: "repotec-g3224x", Vendor: "repotec", Model: "RP-G3224X",
		Chip: "rtl8326", Ports: 26},
	{Name: "zyxel-es116p", Vendor: "zyxel", Model: "ES-116P",
		Chip: "rtl8316b", Ports: 16},
}...)

// Builtin returns the registry of the variants known without a
// configuration file.
func Builtin() *Registry { return builtin }

// Lookup a built-in variant.
func Lookup(name string) (*SwitchType, error) { return builtin.Lookup(name) }

// Names of the built-in variants.
func Names() []string { return builtin.Names() }

func NewRegistry(parent *Registry, specs ...Spec) (*Registry, error) {
	r := &Registry{
		parent: parent,
		byName: make(map[string]*SwitchType, len(specs)),
	}
	for _, spec := range specs {
		if r.has(spec.Name) {
			return nil, fmt.Errorf("%w: %s: duplicate", ErrInvalid,
				spec.Name)
		}
		st, err := New(spec)
		if err != nil {
			return nil, err
		}
		r.byName[st.Name] = st
	}
	return r, nil
}

func mustRegistry(parent *Registry, specs ...Spec) *Registry {
	r, err := NewRegistry(parent, specs...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) has(name string) bool {
	for ; r != nil; r = r.parent {
		if _, found := r.byName[name]; found {
			return true
		}
	}
	return false
}

func (r *Registry) Lookup(name string) (*SwitchType, error) {
	for p := r; p != nil; p = p.parent {
		if st, found := p.byName[name]; found {
			return st, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrUnknown)
}

func (r *Registry) Names() []string {
	var names []string
	for p := r; p != nil; p = p.parent {
		for k := range p.byName {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
