// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "crypto/sha1"

// FooterSize is the trailing SHA-1 digest size.
const FooterSize = 20

// Parse reads data as a complete HBC container, populating every
// top-level table of hf. Sequenced visitor pattern, grounded on
// file.go's Parse: each step reads its section in canonical order,
// aligning to 4 bytes first where the format requires it. Function
// headers are visited with the re-entrant dance spec.md §4.7
// describes — after a Small record, jump to info_offset to collect
// its exception handlers and debug-info triple, then return to the
// anchor immediately after the Small slot.
func (hf *HermesFile) Parse(data []byte) error {
	header, err := decodeHeader(data)
	if err != nil {
		return err
	}
	feat, ok := Features(header.Version)
	if !ok {
		return ErrUnsupportedVersion
	}
	hf.Header = header

	copy(hf.Footer[:], data[len(data)-FooterSize:])
	if hf.opts != nil && hf.opts.VerifyFooter {
		sum := sha1.Sum(data[:len(data)-FooterSize])
		if sum != hf.Footer {
			return ErrFooterMismatch
		}
	}

	if header.FunctionCount > hf.opts.maxFunctionCount() {
		return ErrTooManyFunctions
	}
	if uint64(header.StringCount)+uint64(header.OverflowStringCount) > uint64(hf.opts.maxStringCount()) {
		return ErrTooManyStrings
	}

	table := opcodeTable(header.Version)

	cursor := uint32(HeaderSize)

	if err := hf.parseFunctionHeaders(data, &cursor, feat); err != nil {
		return err
	}

	cursor = alignUp(cursor, 4)
	for i := uint32(0); i < header.StringKindCount; i++ {
		e, err := decodeStringKindEntry(data, cursor, feat)
		if err != nil {
			return err
		}
		hf.StringKinds = append(hf.StringKinds, e)
		cursor += 4
	}

	for i := uint32(0); i < header.IdentifierCount; i++ {
		v, err := readU32(data, cursor)
		if err != nil {
			return err
		}
		hf.IdentifierHashes = append(hf.IdentifierHashes, v)
		cursor += 4
	}

	for i := uint32(0); i < header.StringCount; i++ {
		e, err := decodeSmallStringEntry(data, cursor)
		if err != nil {
			return err
		}
		hf.StringStorage = append(hf.StringStorage, e)
		cursor += 4
	}

	for i := uint32(0); i < header.OverflowStringCount; i++ {
		e, err := decodeOverflowStringEntry(data, cursor)
		if err != nil {
			return err
		}
		hf.OverflowStringStorage = append(hf.OverflowStringStorage, e)
		cursor += 8
	}

	if err := readBlob(data, &cursor, header.StringStorageSize, &hf.StringStorageBytes); err != nil {
		return err
	}

	cursor = alignUp(cursor, 4)
	var arrayBytes, objKeyBytes, objValBytes []byte
	if err := readBlob(data, &cursor, header.ArrayBufferSize, &arrayBytes); err != nil {
		return err
	}
	cursor = alignUp(cursor, 4)
	if err := readBlob(data, &cursor, header.ObjKeyBufferSize, &objKeyBytes); err != nil {
		return err
	}
	cursor = alignUp(cursor, 4)
	if err := readBlob(data, &cursor, header.ObjValueBufferSize, &objValBytes); err != nil {
		return err
	}
	var err2 error
	if hf.ArrayBuffer, err2 = decodeBufferSequences(arrayBytes); err2 != nil {
		return err2
	}
	if hf.ObjectKeyBuffer, err2 = decodeBufferSequences(objKeyBytes); err2 != nil {
		return err2
	}
	if hf.ObjectValBuffer, err2 = decodeBufferSequences(objValBytes); err2 != nil {
		return err2
	}

	if feat.HasBigInt {
		cursor = alignUp(cursor, 4)
		for i := uint32(0); i < header.BigIntCount; i++ {
			e, err := decodeBigIntTableEntry(data, cursor)
			if err != nil {
				return err
			}
			hf.BigIntTable = append(hf.BigIntTable, e)
			cursor += 8
		}
		cursor = alignUp(cursor, 4)
		if err := readBlob(data, &cursor, header.BigIntStorageSize, &hf.BigIntStorage); err != nil {
			return err
		}
	}

	cursor = alignUp(cursor, 4)
	for i := uint32(0); i < header.RegExpCount; i++ {
		e, err := decodeRegExpTableEntry(data, cursor)
		if err != nil {
			return err
		}
		hf.RegExpTable = append(hf.RegExpTable, e)
		cursor += 8
	}
	cursor = alignUp(cursor, 4)
	if err := readBlob(data, &cursor, header.RegExpStorageSize, &hf.RegExpStorage); err != nil {
		return err
	}

	if feat.HasCJSModuleCount {
		cursor = alignUp(cursor, 4)
		for i := uint32(0); i < header.CJSModuleCount; i++ {
			e, next, err := decodeCJSModuleEntry(data, cursor, feat)
			if err != nil {
				return err
			}
			hf.CJSModules = append(hf.CJSModules, e)
			cursor = next
		}
	}

	if feat.HasFunctionSourceTable {
		cursor = alignUp(cursor, 4)
		for i := uint32(0); i < header.FunctionSourceCount; i++ {
			e, err := decodeFunctionSourceEntry(data, cursor)
			if err != nil {
				return err
			}
			hf.FunctionSourceEntries = append(hf.FunctionSourceEntries, e)
			cursor += 8
		}
	}

	// Per-function bytecode streams are reached via each function
	// header's own Offset field rather than the running cursor — a
	// forward pointer stored at read time, not an adjacency the reader
	// should assume, per spec.md §9's note on modeling this as a flat
	// stream with forward pointers rather than a graph.
	for i, fh := range hf.FunctionHeaders {
		instrs, err := decodeFunctionBody(data, fh, table)
		if err != nil {
			return err
		}
		hf.FunctionBytecode = append(hf.FunctionBytecode, FunctionBytecode{
			FunctionIndex: i,
			IsLarge:       fh.Overflowed(),
			Instructions:  instrs,
		})
	}

	sectionEnd := uint32(len(data)) - FooterSize
	if header.DebugInfoOffset < sectionEnd {
		di, err := decodeDebugInfo(data, header.DebugInfoOffset, sectionEnd, feat)
		if err != nil {
			return err
		}
		hf.DebugInfo = di
	}

	hf.getAnomalies()
	return nil
}

// readBlob copies n bytes starting at *cursor into *dst, advancing
// *cursor past them.
func readBlob(data []byte, cursor *uint32, n uint32, dst *[]byte) error {
	if uint64(*cursor)+uint64(n) > uint64(len(data)) {
		return ErrOutsideBoundary
	}
	*dst = append([]byte(nil), data[*cursor:*cursor+n]...)
	*cursor += n
	return nil
}

// parseFunctionHeaders reads header.FunctionCount Small slots starting
// at *cursor, following overflow promotion and the exception-handler
// / debug-info re-entrant dance for each.
func (hf *HermesFile) parseFunctionHeaders(data []byte, cursor *uint32, feat VersionFeatures) error {
	for i := uint32(0); i < hf.Header.FunctionCount; i++ {
		small, overflowed, err := decodeSmallFunctionHeader(data, *cursor)
		if err != nil {
			return err
		}
		anchor := *cursor + 16

		fh := small
		if overflowed {
			largeOffset := reconstituteLargeOffset(small)
			large, err := decodeLargeFunctionHeader(data, largeOffset)
			if err != nil {
				return err
			}
			fh = large
		}

		if fh.HasExceptionHandler {
			handlers, next, err := decodeExceptionHandlers(data, fh.InfoOffset)
			if err != nil {
				return err
			}
			fh.Handlers = handlers
			if fh.HasDebugInfo {
				dbg, _, err := decodeDebugInfoOffsets(data, next, feat)
				if err != nil {
					return err
				}
				fh.DebugOffsets = &dbg
			}
		} else if fh.HasDebugInfo {
			dbg, _, err := decodeDebugInfoOffsets(data, fh.InfoOffset, feat)
			if err != nil {
				return err
			}
			fh.DebugOffsets = &dbg
		}

		hf.FunctionHeaders = append(hf.FunctionHeaders, fh)
		*cursor = anchor
	}
	return nil
}

// decodeFunctionBody decodes fh's instruction stream from its declared
// Offset/ByteSize, stopping once ByteSize bytes are consumed.
func decodeFunctionBody(data []byte, fh FunctionHeader, table []InstructionSpec) ([]Instruction, error) {
	var instrs []Instruction
	end := fh.Offset + fh.ByteSize
	if uint64(end) > uint64(len(data)) {
		return nil, ErrOutsideBoundary
	}
	cursor := fh.Offset
	for cursor < end {
		inst, err := decodeInstruction(table, data, cursor)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, inst)
		cursor += uint32(inst.Size())
	}
	return instrs, nil
}
