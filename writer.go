// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "crypto/sha1"

// Bytes serializes hf into a complete HBC container, per the two-phase
// writer spec.md §4.8 describes: Phase 1 lays out every fixed-size and
// sequential section and reserves function-header slots; Phase 2 (here
// folded into one forward pass, since every offset a slot needs is
// known by the time that slot is patched) emits the variable-size tail
// — bytecode, exception handlers, debug-info triples, promoted Large
// records — patching each function's reserved slot as its real
// location becomes known. header.file_length, every count/size field,
// and the trailing SHA-1 footer are all recomputed from the
// in-memory model; nothing carried over from a prior read is trusted.
func (hf *HermesFile) Bytes() ([]byte, error) {
	feat, ok := Features(hf.Header.Version)
	if !ok {
		return nil, ErrUnsupportedVersion
	}

	buf := make([]byte, HeaderSize)

	slotOffsets := make([]uint32, len(hf.FunctionHeaders))
	for i := range hf.FunctionHeaders {
		slotOffsets[i] = uint32(len(buf))
		buf = append(buf, make([]byte, 16)...)
	}

	for _, e := range hf.StringKinds {
		buf = append(buf, encodeStringKindEntry(e, feat)...)
	}
	for _, v := range hf.IdentifierHashes {
		buf = putU32(buf, v)
	}
	for _, e := range hf.StringStorage {
		buf = append(buf, encodeSmallStringEntry(e)...)
	}
	for _, e := range hf.OverflowStringStorage {
		buf = append(buf, encodeOverflowStringEntry(e)...)
	}
	buf = append(buf, hf.StringStorageBytes...)

	buf = padTo(buf, 4)
	buf = append(buf, encodeBufferSequences(hf.ArrayBuffer)...)
	buf = padTo(buf, 4)
	buf = append(buf, encodeBufferSequences(hf.ObjectKeyBuffer)...)
	buf = padTo(buf, 4)
	buf = append(buf, encodeBufferSequences(hf.ObjectValBuffer)...)

	if feat.HasBigInt {
		buf = padTo(buf, 4)
		for _, e := range hf.BigIntTable {
			buf = append(buf, encodeBigIntTableEntry(e)...)
		}
		buf = padTo(buf, 4)
		buf = append(buf, hf.BigIntStorage...)
	}

	buf = padTo(buf, 4)
	for _, e := range hf.RegExpTable {
		buf = append(buf, encodeRegExpTableEntry(e)...)
	}
	buf = padTo(buf, 4)
	buf = append(buf, hf.RegExpStorage...)

	if feat.HasCJSModuleCount {
		buf = padTo(buf, 4)
		for _, e := range hf.CJSModules {
			buf = append(buf, encodeCJSModuleEntry(e, feat)...)
		}
	}

	if feat.HasFunctionSourceTable {
		buf = padTo(buf, 4)
		for _, e := range hf.FunctionSourceEntries {
			buf = append(buf, encodeFunctionSourceEntry(e)...)
		}
	}

	buf = padTo(buf, 4)
	bytecodeOffsets := make([]uint32, len(hf.FunctionHeaders))
	bytecodeSizes := make([]uint32, len(hf.FunctionHeaders))
	for _, fb := range hf.FunctionBytecode {
		bytecodeOffsets[fb.FunctionIndex] = uint32(len(buf))
		start := len(buf)
		for _, inst := range fb.Instructions {
			buf = encodeInstruction(buf, inst)
		}
		bytecodeSizes[fb.FunctionIndex] = uint32(len(buf) - start)
	}

	for i := range hf.FunctionHeaders {
		fh := hf.FunctionHeaders[i]
		fh.Offset = bytecodeOffsets[i]
		fh.ByteSize = bytecodeSizes[i]

		if fh.HasExceptionHandler || fh.HasDebugInfo {
			if fh.HasExceptionHandler && fh.Handlers == nil {
				return nil, ErrInconsistentFlags
			}
			if fh.HasDebugInfo && fh.DebugOffsets == nil {
				return nil, ErrInconsistentFlags
			}
			buf = padTo(buf, 4)
			infoOffset := uint32(len(buf))
			if fh.HasExceptionHandler {
				buf = append(buf, encodeExceptionHandlers(fh.Handlers)...)
			}
			if fh.HasDebugInfo {
				buf = append(buf, encodeDebugInfoOffsets(*fh.DebugOffsets, feat)...)
			}
			fh.InfoOffset = infoOffset
		} else {
			fh.InfoOffset = 0
		}

		if fh.Overflowed() {
			hf.addAnomaly(AnoPromotedFunctionHeader)
			buf = padTo(buf, 4)
			largeOffset := uint32(len(buf))
			buf = append(buf, encodeLargeFunctionHeader(fh)...)
			copy(buf[slotOffsets[i]:slotOffsets[i]+16], encodeSmallProxy(largeOffset))
		} else {
			copy(buf[slotOffsets[i]:slotOffsets[i]+16], encodeSmallFunctionHeader(fh))
		}
		hf.FunctionHeaders[i] = fh
	}

	buf = padTo(buf, 4)
	debugInfoOffset := uint32(len(buf))
	buf = append(buf, encodeDebugInfo(hf.DebugInfo, feat)...)

	hf.resyncHeader(feat, debugInfoOffset, uint32(len(buf))+FooterSize)
	copy(buf[0:HeaderSize], encodeHeader(hf.Header, feat))

	sum := sha1.Sum(buf)
	hf.Footer = sum
	buf = append(buf, sum[:]...)

	return buf, nil
}

// resyncHeader recomputes every count/size field of hf.Header from the
// in-memory tables, per spec.md §3 invariants 1-2 — the header is
// never trusted as an independent source of truth once a builder has
// touched the model.
func (hf *HermesFile) resyncHeader(feat VersionFeatures, debugInfoOffset, fileLength uint32) {
	h := &hf.Header
	h.FunctionCount = uint32(len(hf.FunctionHeaders))
	h.StringKindCount = uint32(len(hf.StringKinds))
	h.IdentifierCount = uint32(len(hf.IdentifierHashes))
	h.StringCount = uint32(len(hf.StringStorage))
	h.OverflowStringCount = uint32(len(hf.OverflowStringStorage))
	h.StringStorageSize = uint32(len(hf.StringStorageBytes))
	h.ArrayBufferSize = uint32(len(encodeBufferSequences(hf.ArrayBuffer)))
	h.ObjKeyBufferSize = uint32(len(encodeBufferSequences(hf.ObjectKeyBuffer)))
	h.ObjValueBufferSize = uint32(len(encodeBufferSequences(hf.ObjectValBuffer)))
	if feat.HasBigInt {
		h.BigIntCount = uint32(len(hf.BigIntTable))
		h.BigIntStorageSize = uint32(len(hf.BigIntStorage))
	}
	h.RegExpCount = uint32(len(hf.RegExpTable))
	h.RegExpStorageSize = uint32(len(hf.RegExpStorage))
	if feat.HasCJSModuleCount {
		h.CJSModuleCount = uint32(len(hf.CJSModules))
	}
	if feat.HasFunctionSourceTable {
		h.FunctionSourceCount = uint32(len(hf.FunctionSourceEntries))
	}
	h.DebugInfoOffset = debugInfoOffset
	h.FileLength = fileLength
}
