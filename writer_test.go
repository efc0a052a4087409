// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

// TestMinimalFileRoundTrip builds the smallest plausible HBC file (one
// function, a couple of strings, no debug info, no exceptions) with the
// builder, serializes it, and re-parses the bytes — the minimal-file
// round trip every other property test builds on.
func TestMinimalFileRoundTrip(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := hf.SetStringPairsUnordered([]StringPair{
		{Value: "main", Kind: StringKindIdentifier},
		{Value: "hello", Kind: StringKindString},
	}); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}

	table := opcodeTable(Version90)
	inst, err := decodeInstruction(table, []byte{8, 1, 2}, 0) // Mov r1, r2
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	instrs := []Instruction{inst}

	fh := FunctionHeader{FunctionName: 0, ParamCount: 1}
	idx, err := hf.AddFunction(fh, instrs)
	if err != nil {
		t.Fatalf("AddFunction: %v", err)
	}
	hf.Header.GlobalCodeIndex = uint32(idx)

	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(buf) < HeaderSize+FooterSize {
		t.Fatalf("serialized file too small: %d bytes", len(buf))
	}

	got, err := OpenBytes(buf, &Options{VerifyFooter: true})
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer got.Close()

	if got.Header.Version != Version90 {
		t.Fatalf("version = %d, want %d", got.Header.Version, Version90)
	}
	if len(got.FunctionHeaders) != 1 {
		t.Fatalf("function count = %d, want 1", len(got.FunctionHeaders))
	}
	if len(got.FunctionBytecode) != 1 || len(got.FunctionBytecode[0].Instructions) != 1 {
		t.Fatalf("bytecode mismatch: %+v", got.FunctionBytecode)
	}
	if got.FunctionBytecode[0].Instructions[0].Mnemonic != "Mov" {
		t.Fatalf("instruction mismatch: %+v", got.FunctionBytecode[0].Instructions[0])
	}
	name, err := got.StringAt(0)
	if err != nil || name != "main" {
		t.Fatalf("StringAt(0) = %q, %v, want \"main\"", name, err)
	}
}

func TestFooterVerificationFailsOnCorruption(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	buf[HeaderSize] ^= 0xFF // corrupt a byte covered by the footer hash
	if _, err := OpenBytes(buf, &Options{VerifyFooter: true}); err != ErrFooterMismatch {
		t.Fatalf("expected ErrFooterMismatch, got %v", err)
	}
}

func TestLargeFunctionHeaderPromotionRoundTrip(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	table := opcodeTable(Version90)
	inst, err := decodeInstruction(table, []byte{8, 1, 2}, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	// ParamCount at the overflow threshold forces promotion to a Large
	// record on write.
	fh := FunctionHeader{ParamCount: smallOverflowLimit}
	if _, err := hf.AddFunction(fh, []Instruction{inst}); err != nil {
		t.Fatalf("AddFunction: %v", err)
	}

	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := OpenBytes(buf, nil)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer got.Close()

	if !got.FunctionBytecode[0].IsLarge {
		t.Fatal("expected function to round-trip as a Large record")
	}
	if got.FunctionHeaders[0].ParamCount != smallOverflowLimit {
		t.Fatalf("ParamCount = %d, want %d", got.FunctionHeaders[0].ParamCount, smallOverflowLimit)
	}
}
