// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"reflect"
	"testing"
)

func TestSmallFunctionHeaderRoundTrip(t *testing.T) {
	h := FunctionHeader{
		Offset:                 1000,
		ParamCount:             3,
		ByteSize:               200,
		FunctionName:           42,
		InfoOffset:             0,
		FrameSize:              8,
		EnvSize:                2,
		HighestReadCacheIndex:  1,
		HighestWriteCacheIndex: 2,
		ProhibitInvoke:         ProhibitConstruct,
		StrictMode:             true,
	}
	buf := encodeSmallFunctionHeader(h)
	got, overflowed, err := decodeSmallFunctionHeader(buf, 0)
	if err != nil {
		t.Fatalf("decodeSmallFunctionHeader: %v", err)
	}
	if overflowed {
		t.Fatal("header should not report overflowed")
	}
	if got.Offset != h.Offset || got.ParamCount != h.ParamCount || got.ByteSize != h.ByteSize ||
		got.FunctionName != h.FunctionName || got.FrameSize != h.FrameSize || got.EnvSize != h.EnvSize ||
		got.ProhibitInvoke != h.ProhibitInvoke || got.StrictMode != h.StrictMode {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestFunctionHeaderOverflowPromotion(t *testing.T) {
	h := FunctionHeader{Offset: 1 << 17}
	if !h.Overflowed() {
		t.Fatal("offset at threshold should overflow")
	}
	h2 := FunctionHeader{Offset: (1 << 17) - 1}
	if h2.Overflowed() {
		t.Fatal("offset just under threshold should not overflow")
	}
}

func TestLargeFunctionHeaderRoundTrip(t *testing.T) {
	h := FunctionHeader{
		Offset:                 1 << 20,
		ParamCount:             5,
		ByteSize:               99999,
		FunctionName:           7,
		InfoOffset:             123,
		FrameSize:              16,
		EnvSize:                4,
		HighestReadCacheIndex:  9,
		HighestWriteCacheIndex: 10,
		ProhibitInvoke:         ProhibitCall,
		StrictMode:             true,
		HasExceptionHandler:    true,
		HasDebugInfo:           true,
	}
	buf := encodeLargeFunctionHeader(h)
	got, err := decodeLargeFunctionHeader(buf, 0)
	if err != nil {
		t.Fatalf("decodeLargeFunctionHeader: %v", err)
	}
	if !reflect.DeepEqual(got, h) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestSmallProxyReconstitution(t *testing.T) {
	const largeOffset = 0x12345678
	buf := encodeSmallProxy(largeOffset)
	small, overflowed, err := decodeSmallFunctionHeader(buf, 0)
	if err != nil {
		t.Fatalf("decodeSmallFunctionHeader: %v", err)
	}
	if !overflowed {
		t.Fatal("proxy should report overflowed")
	}
	if got := reconstituteLargeOffset(small); got != largeOffset {
		t.Fatalf("reconstituteLargeOffset = %#x, want %#x", got, largeOffset)
	}
}

func TestExceptionHandlersRoundTrip(t *testing.T) {
	handlers := []ExceptionHandler{
		{Start: 0, End: 10, Target: 20},
		{Start: 11, End: 30, Target: 40},
	}
	buf := encodeExceptionHandlers(handlers)
	got, next, err := decodeExceptionHandlers(buf, 0)
	if err != nil {
		t.Fatalf("decodeExceptionHandlers: %v", err)
	}
	if next != uint32(len(buf)) {
		t.Fatalf("next cursor = %d, want %d", next, len(buf))
	}
	if len(got) != len(handlers) {
		t.Fatalf("got %d handlers, want %d", len(got), len(handlers))
	}
	for i := range handlers {
		if got[i] != handlers[i] {
			t.Fatalf("handler %d mismatch: got %+v, want %+v", i, got[i], handlers[i])
		}
	}
}

func TestDebugInfoOffsetsRoundTrip(t *testing.T) {
	feat, _ := Features(Version90)
	d := DebugInfoOffsets{Src: 1, ScopeDesc: 2}
	buf := encodeDebugInfoOffsets(d, feat)
	got, next, err := decodeDebugInfoOffsets(buf, 0, feat)
	if err != nil {
		t.Fatalf("decodeDebugInfoOffsets: %v", err)
	}
	if next != 8 || got.Src != 1 || got.ScopeDesc != 2 || got.Callee != nil {
		t.Fatalf("pre-v91 triple mismatch: %+v, next=%d", got, next)
	}

	featCallee, _ := Features(Version93)
	callee := uint32(9)
	d2 := DebugInfoOffsets{Src: 1, ScopeDesc: 2, Callee: &callee}
	buf2 := encodeDebugInfoOffsets(d2, featCallee)
	got2, next2, err := decodeDebugInfoOffsets(buf2, 0, featCallee)
	if err != nil {
		t.Fatalf("decodeDebugInfoOffsets: %v", err)
	}
	if next2 != 12 || got2.Callee == nil || *got2.Callee != 9 {
		t.Fatalf("v91+ triple mismatch: %+v, next=%d", got2, next2)
	}
}
