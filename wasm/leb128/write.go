// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"io"
)

// WriteVarUint32 writes a uint32 to w in canonical (shortest) unsigned
// LEB128 form. It returns the number of bytes written.
func WriteVarUint32(w io.Writer, v uint32) (int, error) {
	return WriteVarUint64(w, uint64(v))
}

// WriteVarUint64 writes a uint64 to w in canonical (shortest) unsigned
// LEB128 form. It returns the number of bytes written.
func WriteVarUint64(w io.Writer, v uint64) (int, error) {
	var buf [10]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	return w.Write(buf[:n])
}
