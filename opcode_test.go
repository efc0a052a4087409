// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestDecodeEncodeInstructionRoundTrip(t *testing.T) {
	table := opcodeTable(Version90)
	buf := []byte{8, 5, 6} // Mov dst=5 src=6
	inst, err := decodeInstruction(table, buf, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	if inst.Mnemonic != "Mov" || len(inst.Operands) != 2 {
		t.Fatalf("decoded %+v, want Mov with 2 operands", inst)
	}
	if inst.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", inst.Size())
	}
	out := encodeInstruction(nil, inst)
	if string(out) != string(buf) {
		t.Fatalf("round-trip mismatch: got %v, want %v", out, buf)
	}
}

func TestUnreachableOpcodeByte(t *testing.T) {
	table := opcodeTable(Version90)
	// Pick a byte value unlikely to be assigned in any version's table.
	inst, err := decodeInstruction(table, []byte{250}, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	if inst.Mnemonic != "Unreachable" {
		t.Fatalf("byte 250 decoded as %q, want Unreachable", inst.Mnemonic)
	}
}

func TestIsJmpAndAddressField(t *testing.T) {
	table := opcodeTable(Version90)
	buf := []byte{139, 0x08, 0x00, 0x00, 0x00} // JmpLong +8 (byte 139 in v90's table)
	inst, err := decodeInstruction(table, buf, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	if !inst.IsJmp() {
		t.Fatal("JmpLong should report IsJmp")
	}
	if inst.AddressField() != 8 {
		t.Fatalf("AddressField() = %d, want 8", inst.AddressField())
	}
}

func TestDisplayContextFree(t *testing.T) {
	table := opcodeTable(Version90)
	inst, err := decodeInstruction(table, []byte{8, 5, 6}, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	if got, want := inst.Display(nil), "Mov r5, r6"; got != want {
		t.Fatalf("Display(nil) = %q, want %q", got, want)
	}
}
