// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"strings"
)

// Disassemble renders fb's instructions as text lines, synthesizing
// "L1:"-style labels at every address a jump instruction targets, per
// scenario S3: a JmpLong +8 to a later instruction must disassemble
// with a label at the target and the operand rendered as that label's
// name instead of the raw numeric delta.
func Disassemble(f *HermesFile, fb FunctionBytecode) ([]string, error) {
	type entry struct {
		pc   uint32
		inst Instruction
	}
	var entries []entry
	var pc uint32
	for _, inst := range fb.Instructions {
		entries = append(entries, entry{pc: pc, inst: inst})
		pc += uint32(inst.Size())
	}

	labels := map[uint32]string{}
	labelOf := func(target uint32) string {
		if name, ok := labels[target]; ok {
			return name
		}
		name := fmt.Sprintf("L%d", len(labels)+1)
		labels[target] = name
		return name
	}

	targets := map[uint32]bool{}
	for _, e := range entries {
		if e.inst.IsJmp() {
			target := uint32(int64(e.pc) + int64(e.inst.AddressField()))
			targets[target] = true
		}
	}
	for _, e := range entries {
		if targets[e.pc] {
			labelOf(e.pc)
		}
	}

	var lines []string
	for _, e := range entries {
		if name, ok := labels[e.pc]; ok {
			lines = append(lines, name+":")
		}
		if e.inst.IsJmp() {
			target := uint32(int64(e.pc) + int64(e.inst.AddressField()))
			lines = append(lines, jmpDisplay(f, e.inst, labels[target]))
			continue
		}
		lines = append(lines, e.inst.Display(f))
	}
	return lines, nil
}

// jmpDisplay renders a jump instruction's non-address operands the
// normal way and substitutes label for its address operand.
func jmpDisplay(f *HermesFile, inst Instruction, label string) string {
	parts := make([]string, len(inst.Operands))
	for i, op := range inst.Operands {
		if op.Kind.isAddr() {
			parts[i] = label
			continue
		}
		parts[i] = op.String(f)
	}
	return inst.Mnemonic + " " + strings.Join(parts, ", ")
}
