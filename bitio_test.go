// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	var buf []byte
	buf = putU8(buf, 0xAB)
	buf = putU16(buf, 0x1234)
	buf = putU32(buf, 0xDEADBEEF)
	buf = putU64(buf, 0x0102030405060708)
	buf = putF64(buf, 3.5)

	var off uint32
	if v, err := readU8(buf, off); err != nil || v != 0xAB {
		t.Fatalf("readU8 = %d, %v", v, err)
	}
	off++
	if v, err := readU16(buf, off); err != nil || v != 0x1234 {
		t.Fatalf("readU16 = %x, %v", v, err)
	}
	off += 2
	if v, err := readU32(buf, off); err != nil || v != 0xDEADBEEF {
		t.Fatalf("readU32 = %x, %v", v, err)
	}
	off += 4
	if v, err := readU64(buf, off); err != nil || v != 0x0102030405060708 {
		t.Fatalf("readU64 = %x, %v", v, err)
	}
	off += 8
	if v, err := readF64(buf, off); err != nil || v != 3.5 {
		t.Fatalf("readF64 = %v, %v", v, err)
	}
}

func TestReadOutsideBoundary(t *testing.T) {
	b := []byte{1, 2, 3}
	if _, err := readU32(b, 1); err != ErrOutsideBoundary {
		t.Fatalf("expected ErrOutsideBoundary, got %v", err)
	}
}

func TestBitsRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	writeBits(buf, 3, 10, 0x2A9)
	if got := readBits(buf, 3, 10); got != 0x2A9 {
		t.Fatalf("readBits after writeBits = %#x, want %#x", got, 0x2A9)
	}
	// Surrounding bits untouched.
	writeBits(buf, 0, 3, 0x7)
	if got := readBits(buf, 3, 10); got != 0x2A9 {
		t.Fatalf("writeBits clobbered neighboring field: got %#x", got)
	}
}

func TestAlignUpAndPadTo(t *testing.T) {
	if got := alignUp(5, 4); got != 8 {
		t.Fatalf("alignUp(5,4) = %d, want 8", got)
	}
	if got := alignUp(8, 4); got != 8 {
		t.Fatalf("alignUp(8,4) = %d, want 8", got)
	}
	buf := padTo([]byte{1, 2, 3}, 4)
	if len(buf) != 4 || buf[3] != 0 {
		t.Fatalf("padTo = %v, want 4-byte zero-padded", buf)
	}
}
