// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"encoding/binary"
	"math"
)

// readU8 reads a little-endian byte at offset.
func readU8(b []byte, offset uint32) (uint8, error) {
	if offset >= uint32(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return b[offset], nil
}

// readU16 reads a little-endian uint16 at offset.
func readU16(b []byte, offset uint32) (uint16, error) {
	if uint64(offset)+2 > uint64(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint16(b[offset:]), nil
}

// readU32 reads a little-endian uint32 at offset.
func readU32(b []byte, offset uint32) (uint32, error) {
	if uint64(offset)+4 > uint64(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint32(b[offset:]), nil
}

// readU64 reads a little-endian uint64 at offset.
func readU64(b []byte, offset uint32) (uint64, error) {
	if uint64(offset)+8 > uint64(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint64(b[offset:]), nil
}

// readF64 reads a little-endian IEEE-754 double at offset.
func readF64(b []byte, offset uint32) (float64, error) {
	bits, err := readU64(b, offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func putU8(buf []byte, v uint8) []byte  { return append(buf, v) }
func putU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}
func putU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}
func putU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}
func putF64(buf []byte, v float64) []byte {
	return putU64(buf, math.Float64bits(v))
}

// readBits assembles an unsigned value of the given bit width (<=32)
// starting at startBit within b, little-endian bit order across byte
// boundaries. Grounded on helper.go's boundary-checked primitive reads,
// generalized to sub-byte fields for the packed Small function header.
func readBits(b []byte, startBit, width int) uint64 {
	var value uint64
	for i := 0; i < width; i++ {
		bitPos := startBit + i
		byteIdx := bitPos / 8
		bitIdx := uint(bitPos % 8)
		if byteIdx >= len(b) {
			break
		}
		bit := (b[byteIdx] >> bitIdx) & 1
		value |= uint64(bit) << uint(i)
	}
	return value
}

// writeBits ORs value (width bits) into b starting at startBit,
// preserving surrounding bits already present.
func writeBits(b []byte, startBit, width int, value uint64) {
	for i := 0; i < width; i++ {
		bitPos := startBit + i
		byteIdx := bitPos / 8
		bitIdx := uint(bitPos % 8)
		if byteIdx >= len(b) {
			break
		}
		bit := (value >> uint(i)) & 1
		if bit != 0 {
			b[byteIdx] |= 1 << bitIdx
		} else {
			b[byteIdx] &^= 1 << bitIdx
		}
	}
}

// alignUp rounds offset up to the next multiple of n.
func alignUp(offset uint32, n uint32) uint32 {
	if n == 0 {
		return offset
	}
	rem := offset % n
	if rem == 0 {
		return offset
	}
	return offset + (n - rem)
}

// padTo appends zero bytes to buf until its length is a multiple of n,
// the writer-side counterpart of the reader's alignUp.
func padTo(buf []byte, n uint32) []byte {
	target := alignUp(uint32(len(buf)), n)
	for uint32(len(buf)) < target {
		buf = append(buf, 0)
	}
	return buf
}
