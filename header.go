// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// HBCMagic is the 8-byte little-endian magic number every Hermes
// bytecode file starts with.
const HBCMagic uint64 = 0x1F1903C103BC1FC6

// HeaderSize is the fixed, version-independent size of the container
// header, padding included.
const HeaderSize = 128

// BytecodeOptions is the single packed byte of file-wide flags
// trailing the header's fixed fields: static_builtins (bit 0),
// cjs_modules_statically_resolved (bit 1), has_async (bit 2), and a
// fourth reserved flag bit (bit 3).
//
// The upstream encoder has a known bug: every flag setter ORs in
// `1 << 1` regardless of which boolean it is setting, so on-disk files
// only ever carry bit 1. Per the source notes this is not replicated —
// this codec writes and reads one bit per flag as the format
// evidently intends, which is why a byte produced here may not
// bit-for-bit match a byte produced by the buggy original encoder for
// the same logical flags.
type BytecodeOptions struct {
	StaticBuiltins               bool
	CJSModulesStaticallyResolved bool
	HasAsync                     bool
	Reserved                     bool
}

func decodeBytecodeOptions(b byte) BytecodeOptions {
	return BytecodeOptions{
		StaticBuiltins:               b&0x1 != 0,
		CJSModulesStaticallyResolved: b&0x2 != 0,
		HasAsync:                     b&0x4 != 0,
		Reserved:                     b&0x8 != 0,
	}
}

func (o BytecodeOptions) encode() byte {
	var b byte
	if o.StaticBuiltins {
		b |= 0x1
	}
	if o.CJSModulesStaticallyResolved {
		b |= 0x2
	}
	if o.HasAsync {
		b |= 0x4
	}
	if o.Reserved {
		b |= 0x8
	}
	return b
}

// Header is the fixed 128-byte container header. Its on-disk shape
// carries one version-gated union slot (CJSModuleOffset pre-v78,
// SegmentID v78+, tracked here as separate fields the way
// ntheader.go keeps OptionalHeader32/64 as distinct fields rather
// than a single interface{} reread on demand), a version-gated
// BigIntCount/BigIntStorageSize pair (v87+, VersionFeatures.HasBigInt)
// and one version-gated trailing count (CJSModuleCount, v84+). Every
// other count/size field is always present on disk regardless of
// version — a version only determines whether the section the count
// describes is ever populated, not whether the header carries the
// field.
type Header struct {
	Magic    uint64
	Version  uint32
	SHA1     [20]byte

	FileLength        uint32
	GlobalCodeIndex   uint32
	FunctionCount     uint32
	StringKindCount   uint32
	IdentifierCount   uint32
	StringCount       uint32
	OverflowStringCount uint32
	StringStorageSize uint32

	BigIntCount       uint32
	BigIntStorageSize uint32
	RegExpCount       uint32
	RegExpStorageSize uint32

	ArrayBufferSize    uint32
	ObjKeyBufferSize   uint32
	ObjValueBufferSize uint32

	// CJSModuleOffset is valid pre-v78; SegmentID is valid v78+. They
	// occupy the same on-disk slot, per VersionFeatures.HasSegmentID.
	CJSModuleOffset uint32
	SegmentID       uint32

	// CJSModuleCount is only present on disk v84+
	// (VersionFeatures.HasCJSModuleCount); zero otherwise.
	CJSModuleCount uint32

	FunctionSourceCount uint32
	DebugInfoOffset     uint32

	Options BytecodeOptions
}

// decodeHeader reads the 128-byte header starting at offset 0 of b.
// It does not itself enforce ErrUnsupportedVersion; callers combine it
// with Features(h.Version) to obtain the rest of the version-gated
// decoding plan, per spec.md §9's centralized VersionFeatures design.
func decodeHeader(b []byte) (Header, error) {
	if uint64(len(b)) < HeaderSize {
		return Header{}, ErrTruncated
	}

	var h Header
	var off uint32

	magic, err := readU64(b, off)
	if err != nil {
		return Header{}, err
	}
	h.Magic = magic
	off += 8
	if h.Magic != HBCMagic {
		return Header{}, ErrBadMagic
	}

	v, err := readU32(b, off)
	if err != nil {
		return Header{}, err
	}
	h.Version = v
	off += 4

	copy(h.SHA1[:], b[off:off+20])
	off += 20

	feat, ok := Features(h.Version)
	if !ok {
		return Header{}, ErrUnsupportedVersion
	}

	fields := []*uint32{
		&h.FileLength, &h.GlobalCodeIndex, &h.FunctionCount,
		&h.StringKindCount, &h.IdentifierCount, &h.StringCount,
		&h.OverflowStringCount, &h.StringStorageSize,
	}
	if feat.HasBigInt {
		fields = append(fields, &h.BigIntCount, &h.BigIntStorageSize)
	}
	fields = append(fields,
		&h.RegExpCount, &h.RegExpStorageSize,
		&h.ArrayBufferSize, &h.ObjKeyBufferSize, &h.ObjValueBufferSize,
	)
	for _, f := range fields {
		val, err := readU32(b, off)
		if err != nil {
			return Header{}, err
		}
		*f = val
		off += 4
	}

	slot, err := readU32(b, off)
	if err != nil {
		return Header{}, err
	}
	off += 4
	if feat.HasSegmentID {
		h.SegmentID = slot
	} else {
		h.CJSModuleOffset = slot
	}

	if feat.HasCJSModuleCount {
		cnt, err := readU32(b, off)
		if err != nil {
			return Header{}, err
		}
		h.CJSModuleCount = cnt
		off += 4
	}

	fsCount, err := readU32(b, off)
	if err != nil {
		return Header{}, err
	}
	h.FunctionSourceCount = fsCount
	off += 4

	dbgOff, err := readU32(b, off)
	if err != nil {
		return Header{}, err
	}
	h.DebugInfoOffset = dbgOff
	off += 4

	optByte, err := readU8(b, off)
	if err != nil {
		return Header{}, err
	}
	h.Options = decodeBytecodeOptions(optByte)
	off++

	// Remaining bytes up to HeaderSize are padding; the writer zero-fills
	// them and the reader never inspects them.
	return h, nil
}

// encodeHeader emits h's fixed 128-byte wire form, the padding tail
// zero-filled per feat.
func encodeHeader(h Header, feat VersionFeatures) []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = putU64(buf, h.Magic)
	buf = putU32(buf, h.Version)
	buf = append(buf, h.SHA1[:]...)

	buf = putU32(buf, h.FileLength)
	buf = putU32(buf, h.GlobalCodeIndex)
	buf = putU32(buf, h.FunctionCount)
	buf = putU32(buf, h.StringKindCount)
	buf = putU32(buf, h.IdentifierCount)
	buf = putU32(buf, h.StringCount)
	buf = putU32(buf, h.OverflowStringCount)
	buf = putU32(buf, h.StringStorageSize)
	if feat.HasBigInt {
		buf = putU32(buf, h.BigIntCount)
		buf = putU32(buf, h.BigIntStorageSize)
	}
	buf = putU32(buf, h.RegExpCount)
	buf = putU32(buf, h.RegExpStorageSize)
	buf = putU32(buf, h.ArrayBufferSize)
	buf = putU32(buf, h.ObjKeyBufferSize)
	buf = putU32(buf, h.ObjValueBufferSize)

	if feat.HasSegmentID {
		buf = putU32(buf, h.SegmentID)
	} else {
		buf = putU32(buf, h.CJSModuleOffset)
	}
	if feat.HasCJSModuleCount {
		buf = putU32(buf, h.CJSModuleCount)
	}
	buf = putU32(buf, h.FunctionSourceCount)
	buf = putU32(buf, h.DebugInfoOffset)
	buf = putU8(buf, h.Options.encode())

	for uint32(len(buf)) < HeaderSize {
		buf = append(buf, 0)
	}
	return buf[:HeaderSize]
}
