// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pgavlin/wade/wasm/leb128"
)

// Section is a generic WASM section record.
type Section interface {
	// SectionID returns a section ID for WASM encoding. Should be unique across types.
	SectionID() SectionID
	// GetRawSection Returns an embedded RawSection pointer to populate generic fields.
	GetRawSection() *RawSection
}

// SectionID is a 1-byte code that encodes the section code of both known and custom sections.
type SectionID uint8

const (
	SectionIDCustom   SectionID = 0
	SectionIDType     SectionID = 1
	SectionIDImport   SectionID = 2
	SectionIDFunction SectionID = 3
	SectionIDTable    SectionID = 4
	SectionIDMemory   SectionID = 5
	SectionIDGlobal   SectionID = 6
	SectionIDExport   SectionID = 7
	SectionIDStart    SectionID = 8
	SectionIDElement  SectionID = 9
	SectionIDCode     SectionID = 10
	SectionIDData     SectionID = 11
)

func (s SectionID) String() string {
	n, ok := map[SectionID]string{
		SectionIDCustom:   "custom",
		SectionIDType:     "type",
		SectionIDImport:   "import",
		SectionIDFunction: "function",
		SectionIDTable:    "table",
		SectionIDMemory:   "memory",
		SectionIDGlobal:   "global",
		SectionIDExport:   "export",
		SectionIDStart:    "start",
		SectionIDElement:  "element",
		SectionIDCode:     "code",
		SectionIDData:     "data",
	}[s]
	if !ok {
		return "unknown"
	}
	return n
}

// RawSection is a declared section in a WASM module. Start and End are the
// byte offsets of the section's payload within the module buffer; Bytes is a
// view of the payload, not a copy.
type RawSection struct {
	Start int64
	End   int64

	ID    SectionID
	Bytes []byte
}

func (s *RawSection) SectionID() SectionID {
	return s.ID
}

func (s *RawSection) GetRawSection() *RawSection {
	return s
}

// A SectionError describes a structurally invalid section. Offset is the
// offset of the section's id byte within the module buffer.
type SectionError struct {
	Offset int64
	ID     SectionID
	Err    error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("wasm: malformed section (id %d) at offset %d: %v", uint8(e.ID), e.Offset, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

var (
	// ErrSectionOverrun indicates a section whose declared size extends past
	// the end of the module buffer.
	ErrSectionOverrun = errors.New("section size exceeds remaining input")
	// ErrNameOverrun indicates a custom section whose name field extends past
	// the end of its payload.
	ErrNameOverrun = errors.New("name length exceeds payload")
)

var _ Section = (*SectionCustom)(nil)

// SectionCustom is a custom section record (id 0). Name holds the section's
// name decoded as UTF-8, with invalid byte sequences replaced rather than
// rejected; NameLen is the name's byte length as declared by its length
// field. Data holds the payload bytes that follow the name.
type SectionCustom struct {
	RawSection
	Name    string
	NameLen uint32
	Data    []byte
}

func (s *SectionCustom) SectionID() SectionID {
	return SectionIDCustom
}

// Preview returns at most n bytes of the section's content. A negative n
// yields an empty preview.
func (s *SectionCustom) Preview(n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > len(s.Data) {
		n = len(s.Data)
	}
	return s.Data[:n]
}

// decodePayload splits the section's payload into its name field and content.
func (s *SectionCustom) decodePayload() error {
	nameLen, off, err := leb128.ReadVarUint32(s.Bytes, 0)
	if err != nil {
		return err
	}
	if int64(nameLen) > int64(len(s.Bytes)-off) {
		return fmt.Errorf("%w: %d bytes declared, %d available", ErrNameOverrun, nameLen, len(s.Bytes)-off)
	}
	s.NameLen = nameLen
	s.Name = strings.ToValidUTF8(string(s.Bytes[off:off+int(nameLen)]), string(utf8.RuneError))
	s.Data = s.Bytes[off+int(nameLen):]
	return nil
}

// A list of well-known custom sections
const (
	CustomSectionName           = "name"
	CustomSectionProcMacroDecls = ".rustc_proc_macro_decls"
)
