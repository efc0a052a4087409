// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestOperandKindSize(t *testing.T) {
	tests := []struct {
		kind OperandKind
		want int
	}{
		{KindReg8, 1}, {KindReg32, 4}, {KindUInt8, 1}, {KindUInt16, 2}, {KindUInt32, 4},
		{KindAddr8, 1}, {KindAddr32, 4}, {KindImm32, 4}, {KindDouble, 8},
		{KindStringIDUInt8, 1}, {KindStringIDUInt16, 2}, {KindStringIDUInt32, 4},
		{KindFunctionIDUInt8, 1}, {KindFunctionIDUInt16, 2}, {KindFunctionIDUInt32, 4},
		{KindBigIntIDUInt16, 2}, {KindBigIntIDUInt32, 4},
	}
	for _, tt := range tests {
		if got := tt.kind.Size(); got != tt.want {
			t.Errorf("OperandKind(%d).Size() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestOperandStringResolvesStringID(t *testing.T) {
	hf := &HermesFile{}
	if err := hf.SetStringPairsUnordered([]StringPair{{Value: "hello", Kind: StringKindString}}); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}
	op := Operand{Kind: KindStringIDUInt8, Raw: 0}
	if got, want := op.String(hf), `"hello"`; got != want {
		t.Fatalf("Operand.String = %q, want %q", got, want)
	}
}

func TestOperandStringNilFileFallsBackToBareID(t *testing.T) {
	op := Operand{Kind: KindStringIDUInt16, Raw: 3}
	if got, want := op.String(nil), "string#3"; got != want {
		t.Fatalf("Operand.String(nil) = %q, want %q", got, want)
	}
}

func TestSignedAddr(t *testing.T) {
	d8, d32 := int8(-5), int32(-100)
	op8 := Operand{Kind: KindAddr8, Raw: uint64(uint8(d8))}
	if got := op8.SignedAddr(); got != -5 {
		t.Fatalf("SignedAddr (8-bit) = %d, want -5", got)
	}
	op32 := Operand{Kind: KindAddr32, Raw: uint64(uint32(d32))}
	if got := op32.SignedAddr(); got != -100 {
		t.Fatalf("SignedAddr (32-bit) = %d, want -100", got)
	}
}
