// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package switchtype

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
)

// File is the YAML document of additional switch variants, e.g.
//
//	switches:
//	- name: acme-fsw8
//	  chip: rtl8316b
//	  ports: 8
//	  port_order: [7, 6, 5, 4, 3, 2, 1, 0]
type File struct {
	Switches []Spec `json:"switches"`
}

// Load variants from YAML on top of the built-ins.
func Load(b []byte) (*Registry, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return NewRegistry(builtin, f.Switches...)
}

func LoadFile(fn string) (*Registry, error) {
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	r, err := Load(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return r, nil
}

// Open returns the built-in registry if fn is empty, otherwise LoadFile.
func Open(fn string) (*Registry, error) {
	if len(fn) == 0 {
		return builtin, nil
	}
	return LoadFile(fn)
}
