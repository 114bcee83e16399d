// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
)

var ErrInvalidMagic = errors.New("magic header not detected")

const (
	Magic   uint32 = 0x6d736100
	Version uint32 = 0x1
)

// Module represents the section layout of a parsed WebAssembly module:
// http://webassembly.org/docs/modules/
//
// Only the top-level section structure is decoded. Section payloads are left
// opaque, except for custom sections, whose leading name field is split from
// their content.
type Module struct {
	Version  uint32
	Sections []Section
	Customs  []*SectionCustom
}

// Custom returns a custom section with a specific name, if it exists.
func (m *Module) Custom(name string) *SectionCustom {
	for _, s := range m.Customs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// DecodeModule decodes the section structure of a WASM module.
func DecodeModule(buf []byte) (*Module, error) {
	s, err := NewScanner(buf)
	if err != nil {
		return nil, err
	}

	m := &Module{Version: s.Version()}
	for s.Next() {
		sec := s.Section()
		m.Sections = append(m.Sections, sec)
		if custom, ok := sec.(*SectionCustom); ok {
			m.Customs = append(m.Customs, custom)
		}
	}
	if err := s.Error(); err != nil {
		return nil, err
	}
	return m, nil
}
