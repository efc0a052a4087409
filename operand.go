// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"math"
)

// OperandKind identifies the semantic type carried by an operand byte
// sequence, independent of its machine width. Each kind is a distinct
// identity (not just a bit width) so the disassembler can resolve
// values contextually — a StringID operand prints the quoted string, a
// FunctionID prints the target function's name, and so on. Grounded on
// ImageDirectoryEntry.String() in pe.go: a small newtype whose
// rendering depends on the owning file.
type OperandKind uint8

// Operand kinds, one per entry in spec.md §4.2/§4.3.
const (
	KindReg8 OperandKind = iota
	KindReg32
	KindUInt8
	KindUInt16
	KindUInt32
	KindAddr8
	KindAddr32
	KindImm32
	KindDouble
	KindStringIDUInt8
	KindStringIDUInt16
	KindStringIDUInt32
	KindFunctionIDUInt8
	KindFunctionIDUInt16
	KindFunctionIDUInt32
	KindBigIntIDUInt8
	KindBigIntIDUInt16
	KindBigIntIDUInt32
)

// Size returns the on-disk width in bytes of an operand of this kind,
// the table from spec.md §4.3.
func (k OperandKind) Size() int {
	switch k {
	case KindReg8, KindUInt8, KindAddr8, KindStringIDUInt8, KindFunctionIDUInt8, KindBigIntIDUInt8:
		return 1
	case KindUInt16, KindStringIDUInt16, KindFunctionIDUInt16, KindBigIntIDUInt16:
		return 2
	case KindReg32, KindUInt32, KindAddr32, KindImm32, KindStringIDUInt32, KindFunctionIDUInt32, KindBigIntIDUInt32:
		return 4
	case KindDouble:
		return 8
	default:
		return 0
	}
}

func (k OperandKind) isStringID() bool {
	return k == KindStringIDUInt8 || k == KindStringIDUInt16 || k == KindStringIDUInt32
}

func (k OperandKind) isFunctionID() bool {
	return k == KindFunctionIDUInt8 || k == KindFunctionIDUInt16 || k == KindFunctionIDUInt32
}

func (k OperandKind) isBigIntID() bool {
	return k == KindBigIntIDUInt8 || k == KindBigIntIDUInt16 || k == KindBigIntIDUInt32
}

func (k OperandKind) isAddr() bool {
	return k == KindAddr8 || k == KindAddr32
}

// OperandField names one field of an instruction's operand list and
// the kind it carries, the per-entry unit of an opcode table.
type OperandField struct {
	Name string
	Kind OperandKind
}

// Operand is a decoded operand value: the raw machine bits plus the
// kind needed to interpret and render them.
type Operand struct {
	Name string
	Kind OperandKind
	// Raw holds the unsigned bit pattern for every integer-shaped kind
	// (registers, immediates, ids, addresses before sign extension).
	Raw uint64
	// Float holds the decoded value for KindDouble.
	Float float64
}

// Int32 returns Raw as a signed 32-bit immediate (KindImm32).
func (o Operand) Int32() int32 { return int32(uint32(o.Raw)) }

// SignedAddr returns the signed jump delta for an Addr8/Addr32 operand.
func (o Operand) SignedAddr() int32 {
	switch o.Kind {
	case KindAddr8:
		return int32(int8(uint8(o.Raw)))
	case KindAddr32:
		return int32(uint32(o.Raw))
	default:
		return 0
	}
}

// String renders the operand, resolving StringID/FunctionID/BigIntID
// references against f. f may be nil, in which case ids render as bare
// numbers — useful for isolated unit tests of the opcode codec.
func (o Operand) String(f *HermesFile) string {
	switch {
	case o.Kind == KindReg8 || o.Kind == KindReg32:
		return fmt.Sprintf("r%d", o.Raw)
	case o.Kind == KindDouble:
		return fmt.Sprintf("%v", o.Float)
	case o.Kind == KindImm32:
		return fmt.Sprintf("%d", o.Int32())
	case o.Kind.isAddr():
		return fmt.Sprintf("%+d", o.SignedAddr())
	case o.Kind.isStringID():
		if f != nil {
			if s, err := f.StringAt(uint32(o.Raw)); err == nil {
				return fmt.Sprintf("%q", s)
			}
		}
		return fmt.Sprintf("string#%d", o.Raw)
	case o.Kind.isFunctionID():
		if f != nil {
			return f.FunctionDisplayName(uint32(o.Raw))
		}
		return fmt.Sprintf("function#%d", o.Raw)
	case o.Kind.isBigIntID():
		if f != nil {
			if s, err := f.BigIntAt(uint32(o.Raw)); err == nil {
				return s
			}
		}
		return fmt.Sprintf("bigint#%d", o.Raw)
	default:
		return fmt.Sprintf("%d", o.Raw)
	}
}

// doubleOperand is a small helper so callers can build a KindDouble
// Operand from a float64 without reaching into math directly.
func doubleOperand(name string, v float64) Operand {
	return Operand{Name: name, Kind: KindDouble, Float: v, Raw: math.Float64bits(v)}
}
