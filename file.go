// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/Pilfer/hermes-go/log"
)

// HermesFile is the root aggregate of a parsed HBC container: the
// header plus every top-level table the format defines, and an
// anomaly list. Section offsets are recomputed on demand by Bytes()
// rather than cached, so the model stays the single source of truth.
// One instance owns one read source, per the
// single-threaded, synchronous model: no operation here is safe to
// call concurrently from two goroutines on the same instance. Grounded
// on file.go's File: a memory-mapped root struct fronting every
// parsed subsystem, with New/NewBytes/Close/Parse as the public entry
// points and an Options/logger pair threaded through.
type HermesFile struct {
	Header Header

	FunctionHeaders []FunctionHeader

	StringKinds           []StringKindEntry
	IdentifierHashes      []uint32
	StringStorage         []SmallStringEntry
	OverflowStringStorage []OverflowStringEntry
	StringStorageBytes    []byte

	ArrayBuffer    []BufferElement
	ObjectKeyBuffer []BufferElement
	ObjectValBuffer []BufferElement

	BigIntTable   []BigIntTableEntry
	BigIntStorage []byte

	RegExpTable   []RegExpTableEntry
	RegExpStorage []byte

	CJSModules          []CJSModuleEntry
	FunctionSourceEntries []FunctionSourceEntry

	DebugInfo DebugInfo

	FunctionBytecode []FunctionBytecode

	Footer [20]byte

	Anomalies []string

	data mmap.MMap
	f    *os.File
	size uint32

	opts   *Options
	logger *log.Helper
}

// FunctionBytecode is one function's decoded instruction stream plus
// the bookkeeping needed to re-locate it: which FunctionHeaders entry
// it belongs to, and whether that entry was read (or will be written)
// as a Large record.
type FunctionBytecode struct {
	FunctionIndex int
	IsLarge       bool
	Instructions  []Instruction
}

// Open memory-maps the file at path read-only and parses it as HBC.
func Open(path string, opts *Options) (*HermesFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	hf := &HermesFile{opts: opts, data: data, f: f, size: uint32(len(data))}
	hf.logger = opts.helper()
	if err := hf.Parse(data); err != nil {
		hf.Close()
		return nil, err
	}
	return hf, nil
}

// OpenBytes parses data (already fully in memory) as HBC, without
// touching the filesystem — the path the builder-facing tests and the
// disassembler's in-memory fixtures use.
func OpenBytes(data []byte, opts *Options) (*HermesFile, error) {
	hf := &HermesFile{opts: opts, size: uint32(len(data))}
	hf.logger = opts.helper()
	if err := hf.Parse(data); err != nil {
		return nil, err
	}
	return hf, nil
}

// Close unmaps the memory-mapped file (if any) and closes its
// descriptor.
func (hf *HermesFile) Close() error {
	if hf.data != nil {
		_ = hf.data.Unmap()
	}
	if hf.f != nil {
		return hf.f.Close()
	}
	return nil
}

// FunctionDisplayName renders a human-readable label for function
// index idx: its name string if it has one, else a synthesized
// $FUNC_n placeholder the way anonymous closures are referenced in
// disassembly, per spec.md §4.2.
func (hf *HermesFile) FunctionDisplayName(idx uint32) string {
	if idx >= uint32(len(hf.FunctionHeaders)) {
		return fmt.Sprintf("$FUNC_%d", idx)
	}
	fh := hf.FunctionHeaders[idx]
	name, err := hf.StringAt(fh.FunctionName)
	if err != nil || name == "" {
		return fmt.Sprintf("$FUNC_%d", idx)
	}
	return name
}

// BigIntAt resolves bigint-table index idx to a decimal string,
// rendering its storage bytes as a big-endian unsigned magnitude — the
// bigint table's own codec (construction, signedness) is out of scope
// for this container layer, which stores and round-trips the bytes as
// opaque payload.
func (hf *HermesFile) BigIntAt(idx uint32) (string, error) {
	if idx >= uint32(len(hf.BigIntTable)) {
		return "", ErrOutsideBoundary
	}
	e := hf.BigIntTable[idx]
	if uint64(e.Offset)+uint64(e.Length) > uint64(len(hf.BigIntStorage)) {
		return "", ErrOutsideBoundary
	}
	raw := hf.BigIntStorage[e.Offset : e.Offset+e.Length]
	if len(raw) == 0 {
		return "0n", nil
	}
	var mag uint64
	for _, b := range raw {
		mag = mag<<8 | uint64(b)
	}
	return fmt.Sprintf("%dn", mag), nil
}
