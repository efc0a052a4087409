// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"strings"
)

// InstructionSpec is one row of a version's opcode table: the fixed
// 1-byte opcode, its mnemonic, and its ordered operand list. Per
// spec.md §9, this table literal is the *only* input that varies
// between bytecode versions — everything else (codec, size, jump/call
// predicates, display) is mechanical and version-independent. The
// table's contents (opcode_build.go) are byte-exact to
// original_source/src/hermes/v84/mod.rs and v95/mod.rs, the ground
// truth for the real Hermes instruction set; the row shape itself is
// grounded on dotnet_metadata_tables.go's per-table column-list
// literals (one table ID maps to an ordered list of typed columns) and
// on the version-gated-field idea generalized from ntheader.go's
// 32-vs-64 optional header split.
type InstructionSpec struct {
	Op       byte
	Mnemonic string
	Operands []OperandField
}

// Size is 1 (the opcode byte) plus the sum of its operand sizes.
func (s InstructionSpec) Size() int {
	total := 1
	for _, f := range s.Operands {
		total += f.Kind.Size()
	}
	return total
}

// Instruction is a single decoded bytecode instruction. One Go type
// serves every version: since Go has no macro system to emit N
// per-version sum types, a table-selected shared struct plays the
// same role spec.md §9's "per-version Instruction sum type" describes,
// keyed by Op/Mnemonic rather than by a generated Go type.
type Instruction struct {
	Op       byte
	Mnemonic string
	Operands []Operand
}

// Size returns 1 + the sum of the decoded operands' sizes.
func (i Instruction) Size() int {
	total := 1
	for _, op := range i.Operands {
		total += op.Kind.Size()
	}
	return total
}

// jmpMnemonics is the closed set of 51 branch mnemonics from spec.md
// §4.3: Jmp/Jmp* conditional variants, the JLess/JNotLess/... comparison
// jump family (each with a Long suffix pairing an 8-bit and 32-bit
// address form), and SwitchImm.
var jmpMnemonics = map[string]bool{
	"Jmp": true, "JmpLong": true,
	"JmpTrue": true, "JmpTrueLong": true,
	"JmpFalse": true, "JmpFalseLong": true,
	"JmpUndefined": true, "JmpUndefinedLong": true,
	"SaveGenerator": true, "SaveGeneratorLong": true,
	"JLess": true, "JLessLong": true,
	"JNotLess": true, "JNotLessLong": true,
	"JLessEqual": true, "JLessEqualLong": true,
	"JNotLessEqual": true, "JNotLessEqualLong": true,
	"JGreater": true, "JGreaterLong": true,
	"JNotGreater": true, "JNotGreaterLong": true,
	"JGreaterEqual": true, "JGreaterEqualLong": true,
	"JNotGreaterEqual": true, "JNotGreaterEqualLong": true,
	"JEqual": true, "JEqualLong": true,
	"JNotEqual": true, "JNotEqualLong": true,
	"JStrictEqual": true, "JStrictEqualLong": true,
	"JStrictNotEqual": true, "JStrictNotEqualLong": true,
	"JLessN": true, "JLessNLong": true,
	"JNotLessN": true, "JNotLessNLong": true,
	"JLessEqualN": true, "JLessEqualNLong": true,
	"JNotLessEqualN": true, "JNotLessEqualNLong": true,
	"JGreaterN": true, "JGreaterNLong": true,
	"JNotGreaterN": true, "JNotGreaterNLong": true,
	"JGreaterEqualN": true, "JGreaterEqualNLong": true,
	"JNotGreaterEqualN": true, "JNotGreaterEqualNLong": true,
	"SwitchImm": true,
}

// callMnemonics is the closed set of call-family mnemonics that leave a
// return value in a known register (HasRetTarget).
var callMnemonics = map[string]bool{
	"Call": true, "Construct": true, "Call1": true, "Call2": true, "Call3": true,
	"Call4": true, "CallLong": true, "ConstructLong": true,
	"CallDirect": true, "CallDirectLongIndex": true,
	"CallBuiltin": true, "CallBuiltinLong": true, "GetNewTarget": true,
}

// IsJmp reports whether this instruction is one of the closed set of
// branch mnemonics.
func (i Instruction) IsJmp() bool { return jmpMnemonics[i.Mnemonic] }

// HasRetTarget reports whether this instruction is one of the closed
// set of call mnemonics.
func (i Instruction) HasRetTarget() bool { return callMnemonics[i.Mnemonic] }

// AddressField returns the numeric value of the first operand whose
// kind is Addr8 or Addr32, or 0 if there is none.
func (i Instruction) AddressField() int32 {
	for _, op := range i.Operands {
		if op.Kind.isAddr() {
			return op.SignedAddr()
		}
	}
	return 0
}

// Display renders the instruction as "Mnemonic op1, op2, ...",
// resolving StringID/FunctionID/BigIntID operands against f (nil is
// permitted for context-free rendering).
func (i Instruction) Display(f *HermesFile) string {
	if len(i.Operands) == 0 {
		return i.Mnemonic
	}
	parts := make([]string, len(i.Operands))
	for idx, op := range i.Operands {
		parts[idx] = op.String(f)
	}
	return i.Mnemonic + " " + strings.Join(parts, ", ")
}

// decodeInstruction reads one instruction from b starting at offset,
// consuming the opcode byte and then its operands in order.
func decodeInstruction(table []InstructionSpec, b []byte, offset uint32) (Instruction, error) {
	opByte, err := readU8(b, offset)
	if err != nil {
		return Instruction{}, err
	}
	spec := lookupSpec(table, opByte)
	inst := Instruction{Op: opByte, Mnemonic: spec.Mnemonic}
	cursor := offset + 1
	for _, field := range spec.Operands {
		op, n, err := decodeOperand(b, cursor, field)
		if err != nil {
			return Instruction{}, err
		}
		inst.Operands = append(inst.Operands, op)
		cursor += uint32(n)
	}
	return inst, nil
}

func decodeOperand(b []byte, offset uint32, field OperandField) (Operand, int, error) {
	size := field.Kind.Size()
	switch field.Kind {
	case KindDouble:
		v, err := readF64(b, offset)
		if err != nil {
			return Operand{}, 0, err
		}
		return Operand{Name: field.Name, Kind: field.Kind, Float: v}, size, nil
	default:
		switch size {
		case 1:
			v, err := readU8(b, offset)
			if err != nil {
				return Operand{}, 0, err
			}
			return Operand{Name: field.Name, Kind: field.Kind, Raw: uint64(v)}, size, nil
		case 2:
			v, err := readU16(b, offset)
			if err != nil {
				return Operand{}, 0, err
			}
			return Operand{Name: field.Name, Kind: field.Kind, Raw: uint64(v)}, size, nil
		case 4:
			v, err := readU32(b, offset)
			if err != nil {
				return Operand{}, 0, err
			}
			return Operand{Name: field.Name, Kind: field.Kind, Raw: uint64(v)}, size, nil
		default:
			return Operand{}, 0, fmt.Errorf("hermes: unsupported operand size %d", size)
		}
	}
}

// encodeInstruction appends i's wire encoding (opcode byte then
// operands in order) to buf.
func encodeInstruction(buf []byte, i Instruction) []byte {
	buf = append(buf, i.Op)
	for _, op := range i.Operands {
		switch op.Kind {
		case KindDouble:
			buf = putF64(buf, op.Float)
		default:
			switch op.Kind.Size() {
			case 1:
				buf = putU8(buf, uint8(op.Raw))
			case 2:
				buf = putU16(buf, uint16(op.Raw))
			case 4:
				buf = putU32(buf, uint32(op.Raw))
			}
		}
	}
	return buf
}

// unreachableSpec is returned for any opcode byte not present in a
// version's table; the table is a partial function 0..256 -> mnemonic,
// and any reachable-but-undefined byte decodes to Unreachable per
// spec.md §4.3/§8 invariant 5.
var unreachableSpec = InstructionSpec{Mnemonic: "Unreachable"}

func lookupSpec(table []InstructionSpec, op byte) InstructionSpec {
	// Tables are built densely indexed by opcode in opcode tables
	// files; callers pass the per-version slice directly so this is a
	// simple bounds-checked index.
	if int(op) < len(table) && table[op].Mnemonic != "" {
		return table[op]
	}
	return unreachableSpec
}
