// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leb128 provides functions for reading and writing integers in the
// unsigned Little-Endian Base-128 format.
package leb128

import (
	"errors"
)

var (
	// ErrOutOfBounds is returned when an encoding extends past the end of the
	// input buffer.
	ErrOutOfBounds = errors.New("leb128: unexpected end of input")
	// ErrOverflow is returned when an encoding does not fit the target width.
	ErrOverflow = errors.New("leb128: integer overflow")
)

// ReadVarUint32 reads an unsigned LEB128-encoded 32-bit integer from p
// starting at the given offset. It returns the decoded value and the offset
// of the first byte past the encoding. The encoding may occupy at most five
// bytes; longer encodings and values that do not fit in 32 bits return
// ErrOverflow. ReadVarUint32 never reads past the end of p: a missing
// continuation byte returns ErrOutOfBounds.
func ReadVarUint32(p []byte, offset int) (uint32, int, error) {
	var result uint32
	for i := 0; i < 5; i++ {
		if offset >= len(p) {
			return 0, offset, ErrOutOfBounds
		}
		b := p[offset]
		offset++

		if i == 4 && b&0xf0 != 0 {
			return 0, offset, ErrOverflow
		}
		result |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return result, offset, nil
		}
	}
	return 0, offset, ErrOverflow
}

// ReadVarUint64 reads an unsigned LEB128-encoded 64-bit integer from p
// starting at the given offset. It returns the decoded value and the offset
// of the first byte past the encoding. The encoding may occupy at most ten
// bytes; longer encodings and values that do not fit in 64 bits return
// ErrOverflow. ReadVarUint64 never reads past the end of p: a missing
// continuation byte returns ErrOutOfBounds.
func ReadVarUint64(p []byte, offset int) (uint64, int, error) {
	var result uint64
	for i := 0; i < 10; i++ {
		if offset >= len(p) {
			return 0, offset, ErrOutOfBounds
		}
		b := p[offset]
		offset++

		if i == 9 && b&0xfe != 0 {
			return 0, offset, ErrOverflow
		}
		result |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return result, offset, nil
		}
	}
	return 0, offset, ErrOverflow
}
