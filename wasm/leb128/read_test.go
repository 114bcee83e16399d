// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"errors"
	"fmt"
	"testing"
)

var casesUint = []struct {
	v uint64
	b []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{4, []byte{0x04}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{129, []byte{0x81, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{624485, []byte{0xe5, 0x8e, 0x26}},
	{1<<32 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
}

var casesUint64 = []struct {
	v uint64
	b []byte
}{
	{1 << 32, []byte{0x80, 0x80, 0x80, 0x80, 0x10}},
	{1 << 63, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
	{1<<64 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
}

func TestReadVarUint32(t *testing.T) {
	for _, c := range casesUint {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			v, next, err := ReadVarUint32(c.b, 0)
			if err != nil {
				t.Fatal(err)
			}
			if v != uint32(c.v) {
				t.Fatalf("read %d; want %d", v, c.v)
			}
			if next != len(c.b) {
				t.Fatalf("next offset %d; want %d", next, len(c.b))
			}
		})
	}
}

func TestReadVarUint64(t *testing.T) {
	for _, c := range append(casesUint[:len(casesUint):len(casesUint)], casesUint64...) {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			v, next, err := ReadVarUint64(c.b, 0)
			if err != nil {
				t.Fatal(err)
			}
			if v != c.v {
				t.Fatalf("read %d; want %d", v, c.v)
			}
			if next != len(c.b) {
				t.Fatalf("next offset %d; want %d", next, len(c.b))
			}
		})
	}
}

func TestReadVarUintOffset(t *testing.T) {
	buf := append([]byte{0xaa, 0xbb}, 0xe5, 0x8e, 0x26)

	v, next, err := ReadVarUint32(buf, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 624485 {
		t.Fatalf("read %d; want 624485", v)
	}
	if next != 5 {
		t.Fatalf("next offset %d; want 5", next)
	}
}

func TestReadVarUintNonCanonical(t *testing.T) {
	// Zero-padded encodings are legal as long as they fit the width.
	v, next, err := ReadVarUint32([]byte{0x80, 0x00}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 || next != 2 {
		t.Fatalf("read (%d, %d); want (0, 2)", v, next)
	}
}

func TestReadVarUint32Errors(t *testing.T) {
	cases := []struct {
		name   string
		b      []byte
		offset int
		err    error
	}{
		{"empty", nil, 0, ErrOutOfBounds},
		{"offset at end", []byte{0x01}, 1, ErrOutOfBounds},
		{"offset past end", []byte{0x01}, 2, ErrOutOfBounds},
		{"truncated", []byte{0x80}, 0, ErrOutOfBounds},
		{"truncated 4", []byte{0x80, 0x80, 0x80, 0x80}, 0, ErrOutOfBounds},
		{"too long", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, ErrOverflow},
		{"too large", []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, 0, ErrOverflow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := ReadVarUint32(c.b, c.offset); !errors.Is(err, c.err) {
				t.Fatalf("got %v; want %v", err, c.err)
			}
		})
	}
}

func TestReadVarUint64Errors(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		err  error
	}{
		{"empty", nil, ErrOutOfBounds},
		{"truncated", []byte{0x80, 0x80}, ErrOutOfBounds},
		{"truncated 9", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, ErrOutOfBounds},
		{"too long", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, ErrOverflow},
		{"too large", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}, ErrOverflow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := ReadVarUint64(c.b, 0); !errors.Is(err, c.err) {
				t.Fatalf("got %v; want %v", err, c.err)
			}
		})
	}
}
