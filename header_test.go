// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestBytecodeOptionsRoundTrip(t *testing.T) {
	o := BytecodeOptions{StaticBuiltins: true, HasAsync: true}
	got := decodeBytecodeOptions(o.encode())
	if got != o {
		t.Fatalf("decodeBytecodeOptions(encode()) = %+v, want %+v", got, o)
	}
}

func TestHeaderRoundTripSegmentID(t *testing.T) {
	feat, ok := Features(Version90)
	if !ok {
		t.Fatal("Version90 should be supported")
	}
	h := Header{
		Magic:           HBCMagic,
		Version:         Version90,
		FileLength:      1000,
		FunctionCount:   3,
		SegmentID:       7,
		FunctionSourceCount: 2,
		DebugInfoOffset: 512,
		Options:         BytecodeOptions{HasAsync: true},
	}
	buf := encodeHeader(h, feat)
	if len(buf) != HeaderSize {
		t.Fatalf("encodeHeader length = %d, want %d", len(buf), HeaderSize)
	}
	got, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if got.SegmentID != 7 || got.CJSModuleOffset != 0 {
		t.Fatalf("v90 header should carry segment_id not cjs_module_offset: got %+v", got)
	}
	if got.FunctionCount != 3 || got.DebugInfoOffset != 512 || !got.Options.HasAsync {
		t.Fatalf("round-tripped header mismatch: %+v", got)
	}
}

func TestHeaderRoundTripCJSModuleOffset(t *testing.T) {
	feat, ok := Features(Version76)
	if !ok {
		t.Fatal("Version76 should be supported")
	}
	h := Header{
		Magic:           HBCMagic,
		Version:         Version76,
		CJSModuleOffset: 42,
	}
	buf := encodeHeader(h, feat)
	got, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if got.CJSModuleOffset != 42 {
		t.Fatalf("pre-v78 header should carry cjs_module_offset: got %+v", got)
	}
}

func TestDecodeHeaderBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	if _, err := decodeHeader(buf); err != ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeHeaderUnsupportedVersion(t *testing.T) {
	var buf []byte
	buf = putU64(buf, HBCMagic)
	buf = putU32(buf, 1)
	buf = append(buf, make([]byte, HeaderSize-len(buf))...)
	if _, err := decodeHeader(buf); err != ErrUnsupportedVersion {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestDecodeHeaderTruncated(t *testing.T) {
	if _, err := decodeHeader(make([]byte, 10)); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
