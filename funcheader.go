// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// ProhibitInvoke records whether a function header forbids being used
// as a plain call, as a constructor, or neither.
type ProhibitInvoke uint8

// ProhibitInvoke values. 3 is an invalid tag the format never assigns;
// a Small header carrying it while overflowed is tolerated and
// silently coerced to ProhibitNone per spec.md §7/§9.
const (
	ProhibitCall      ProhibitInvoke = 0
	ProhibitConstruct ProhibitInvoke = 1
	ProhibitNone      ProhibitInvoke = 2
)

// smallOverflowLimit is the uniform threshold spec.md §4.5 gives for
// "Overflow check": any of the seven listed fields at or above this
// value forces promotion to a Large record, regardless of that
// field's own narrower bit width in the Small layout. This mirrors a
// deliberately loose, cheap check in the original source rather than
// per-field bit-width validation.
const smallOverflowLimit = 1 << 17

// FunctionHeader is the canonical in-memory representation of a
// function header. The wire format has two shapes (Small, 16 bytes
// bitfield-packed; Large, 32 bytes byte-aligned) but both describe the
// same logical fields, so one Go struct models both — Overflowed()
// decides which shape a write uses, the way ntheader.go's
// ImageOptionalHeader32/64 are two wire shapes of "the optional
// header" gated by a single Is64 discriminant.
type FunctionHeader struct {
	Offset                uint32
	ParamCount            uint32
	ByteSize              uint32
	FunctionName          uint32
	InfoOffset            uint32
	FrameSize             uint32
	EnvSize               uint32
	HighestReadCacheIndex uint8
	HighestWriteCacheIndex uint8
	ProhibitInvoke        ProhibitInvoke
	StrictMode            bool
	HasExceptionHandler   bool
	HasDebugInfo          bool

	Handlers     []ExceptionHandler
	DebugOffsets *DebugInfoOffsets
}

// ExceptionHandler is one 12-byte record from the table that lives at
// info_offset when HasExceptionHandler is set. Grounded on
// exception.go's per-function unwind-record list (begin/end/target),
// the same shape PE exception directories use.
type ExceptionHandler struct {
	Start  uint32
	End    uint32
	Target uint32
}

// DebugInfoOffsets is the per-function triple that follows the
// exception-handler list (or sits directly at info_offset if there is
// none) when HasDebugInfo is set. Callee is nil pre-v91.
type DebugInfoOffsets struct {
	Src       uint32
	ScopeDesc uint32
	Callee    *uint32
}

// Overflowed reports whether this header's fields require promotion
// to a Large record on write, per the threshold in spec.md §4.5.
func (h FunctionHeader) Overflowed() bool {
	return h.Offset >= smallOverflowLimit ||
		h.ParamCount >= smallOverflowLimit ||
		h.ByteSize >= smallOverflowLimit ||
		h.FunctionName >= smallOverflowLimit ||
		h.InfoOffset >= smallOverflowLimit ||
		h.FrameSize >= smallOverflowLimit ||
		h.EnvSize >= smallOverflowLimit ||
		uint32(h.HighestReadCacheIndex) >= smallOverflowLimit ||
		uint32(h.HighestWriteCacheIndex) >= smallOverflowLimit
}

// decodeSmallFunctionHeader unpacks the 16-byte bitfield record at
// offset. If overflowed is set, Offset/InfoOffset instead encode a
// split pointer to the real Large record (see
// reconstituteLargeOffset) and the other fields are not meaningful.
func decodeSmallFunctionHeader(b []byte, offset uint32) (FunctionHeader, bool, error) {
	if uint64(offset)+16 > uint64(len(b)) {
		return FunctionHeader{}, false, ErrOutsideBoundary
	}
	buf := b[offset : offset+16]
	var h FunctionHeader
	h.Offset = uint32(readBits(buf, 0, 25))
	h.ParamCount = uint32(readBits(buf, 25, 7))
	h.ByteSize = uint32(readBits(buf, 32, 15))
	h.FunctionName = uint32(readBits(buf, 47, 17))
	h.InfoOffset = uint32(readBits(buf, 64, 25))
	h.FrameSize = uint32(readBits(buf, 89, 7))
	h.EnvSize = uint32(readBits(buf, 96, 8))
	h.HighestReadCacheIndex = uint8(readBits(buf, 104, 8))
	h.HighestWriteCacheIndex = uint8(readBits(buf, 112, 8))
	prohibit := ProhibitInvoke(readBits(buf, 120, 2))
	overflowed := readBits(buf, 125, 1) != 0
	if prohibit > ProhibitNone {
		if overflowed {
			// Lenient path per spec.md §7/§9: an overflowed Small's
			// prohibit-invoke tag is meaningless (the real value lives
			// in the Large record); default rather than error.
			prohibit = ProhibitNone
		} else {
			return FunctionHeader{}, false, ErrInvalidBitfield
		}
	}
	h.ProhibitInvoke = prohibit
	h.StrictMode = readBits(buf, 122, 1) != 0
	h.HasExceptionHandler = readBits(buf, 123, 1) != 0
	h.HasDebugInfo = readBits(buf, 124, 1) != 0
	return h, overflowed, nil
}

// reconstituteLargeOffset recovers the stream offset of the true Large
// record from an overflowed Small header's split Offset/InfoOffset
// fields: (info_offset<<16) | (offset & 0xffff).
func reconstituteLargeOffset(small FunctionHeader) uint32 {
	return (small.InfoOffset << 16) | (small.Offset & 0xffff)
}

// encodeSmallFunctionHeader packs h into 16 bytes. The caller must
// already know h does not overflow; use encodeSmallProxy for the
// split-pointer slot of a promoted header.
func encodeSmallFunctionHeader(h FunctionHeader) []byte {
	buf := make([]byte, 16)
	writeBits(buf, 0, 25, uint64(h.Offset))
	writeBits(buf, 25, 7, uint64(h.ParamCount))
	writeBits(buf, 32, 15, uint64(h.ByteSize))
	writeBits(buf, 47, 17, uint64(h.FunctionName))
	writeBits(buf, 64, 25, uint64(h.InfoOffset))
	writeBits(buf, 89, 7, uint64(h.FrameSize))
	writeBits(buf, 96, 8, uint64(h.EnvSize))
	writeBits(buf, 104, 8, uint64(h.HighestReadCacheIndex))
	writeBits(buf, 112, 8, uint64(h.HighestWriteCacheIndex))
	writeBits(buf, 120, 2, uint64(h.ProhibitInvoke))
	if h.StrictMode {
		writeBits(buf, 122, 1, 1)
	}
	if h.HasExceptionHandler {
		writeBits(buf, 123, 1, 1)
	}
	if h.HasDebugInfo {
		writeBits(buf, 124, 1, 1)
	}
	return buf
}

// encodeSmallProxy builds the 16-byte Small-slot record written in
// the function-headers section for a promoted (overflowed) header:
// its Offset/InfoOffset fields carry the split stream pointer to the
// Large record, and its overflowed bit is set.
func encodeSmallProxy(largeRecordOffset uint32) []byte {
	buf := make([]byte, 16)
	writeBits(buf, 0, 25, uint64(largeRecordOffset&0xffff))
	writeBits(buf, 64, 25, uint64(largeRecordOffset>>16))
	writeBits(buf, 125, 1, 1)
	return buf
}

// decodeLargeFunctionHeader unpacks the 32-byte byte-aligned record at
// offset.
func decodeLargeFunctionHeader(b []byte, offset uint32) (FunctionHeader, error) {
	if uint64(offset)+32 > uint64(len(b)) {
		return FunctionHeader{}, ErrOutsideBoundary
	}
	var h FunctionHeader
	var err error
	read := func(o uint32) uint32 {
		if err != nil {
			return 0
		}
		var v uint32
		v, err = readU32(b, o)
		return v
	}
	h.Offset = read(offset + 0)
	h.ParamCount = read(offset + 4)
	h.ByteSize = read(offset + 8)
	h.FunctionName = read(offset + 12)
	h.InfoOffset = read(offset + 16)
	h.FrameSize = read(offset + 20)
	h.EnvSize = read(offset + 24)
	if err != nil {
		return FunctionHeader{}, err
	}
	readCache, e1 := readU8(b, offset+28)
	writeCache, e2 := readU8(b, offset+29)
	flags, e3 := readU8(b, offset+30)
	if e1 != nil {
		return FunctionHeader{}, e1
	}
	if e2 != nil {
		return FunctionHeader{}, e2
	}
	if e3 != nil {
		return FunctionHeader{}, e3
	}
	h.HighestReadCacheIndex = readCache
	h.HighestWriteCacheIndex = writeCache
	h.ProhibitInvoke = ProhibitInvoke(flags & 0x3)
	h.StrictMode = flags&0x4 != 0
	h.HasExceptionHandler = flags&0x8 != 0
	h.HasDebugInfo = flags&0x10 != 0
	// byte 31 is reserved padding, mirroring the Small record's unused
	// bits 126-127.
	return h, nil
}

// encodeLargeFunctionHeader packs h into 32 bytes.
func encodeLargeFunctionHeader(h FunctionHeader) []byte {
	buf := make([]byte, 0, 32)
	buf = putU32(buf, h.Offset)
	buf = putU32(buf, h.ParamCount)
	buf = putU32(buf, h.ByteSize)
	buf = putU32(buf, h.FunctionName)
	buf = putU32(buf, h.InfoOffset)
	buf = putU32(buf, h.FrameSize)
	buf = putU32(buf, h.EnvSize)
	buf = putU8(buf, h.HighestReadCacheIndex)
	buf = putU8(buf, h.HighestWriteCacheIndex)
	var flags uint8
	flags |= uint8(h.ProhibitInvoke) & 0x3
	if h.StrictMode {
		flags |= 0x4
	}
	if h.HasExceptionHandler {
		flags |= 0x8
	}
	if h.HasDebugInfo {
		flags |= 0x10
	}
	buf = putU8(buf, flags)
	buf = putU8(buf, 0) // reserved
	return buf
}

// decodeExceptionHandlers reads the u32 count followed by that many
// 12-byte (start, end, target) records at offset.
func decodeExceptionHandlers(b []byte, offset uint32) ([]ExceptionHandler, uint32, error) {
	count, err := readU32(b, offset)
	if err != nil {
		return nil, 0, err
	}
	cursor := offset + 4
	handlers := make([]ExceptionHandler, 0, count)
	for i := uint32(0); i < count; i++ {
		start, err := readU32(b, cursor)
		if err != nil {
			return nil, 0, err
		}
		end, err := readU32(b, cursor+4)
		if err != nil {
			return nil, 0, err
		}
		target, err := readU32(b, cursor+8)
		if err != nil {
			return nil, 0, err
		}
		handlers = append(handlers, ExceptionHandler{Start: start, End: end, Target: target})
		cursor += 12
	}
	return handlers, cursor, nil
}

func encodeExceptionHandlers(handlers []ExceptionHandler) []byte {
	buf := make([]byte, 0, 4+12*len(handlers))
	buf = putU32(buf, uint32(len(handlers)))
	for _, h := range handlers {
		buf = putU32(buf, h.Start)
		buf = putU32(buf, h.End)
		buf = putU32(buf, h.Target)
	}
	return buf
}

// decodeDebugInfoOffsets reads the 2-field (pre-v91) or 3-field (v91+)
// triple at offset.
func decodeDebugInfoOffsets(b []byte, offset uint32, feat VersionFeatures) (DebugInfoOffsets, uint32, error) {
	src, err := readU32(b, offset)
	if err != nil {
		return DebugInfoOffsets{}, 0, err
	}
	scope, err := readU32(b, offset+4)
	if err != nil {
		return DebugInfoOffsets{}, 0, err
	}
	out := DebugInfoOffsets{Src: src, ScopeDesc: scope}
	cursor := offset + 8
	if feat.DebugInfoOffsetsHasCallee {
		callee, err := readU32(b, cursor)
		if err != nil {
			return DebugInfoOffsets{}, 0, err
		}
		out.Callee = &callee
		cursor += 4
	}
	return out, cursor, nil
}

func encodeDebugInfoOffsets(d DebugInfoOffsets, feat VersionFeatures) []byte {
	buf := make([]byte, 0, 12)
	buf = putU32(buf, d.Src)
	buf = putU32(buf, d.ScopeDesc)
	if feat.DebugInfoOffsetsHasCallee {
		callee := uint32(0)
		if d.Callee != nil {
			callee = *d.Callee
		}
		buf = putU32(buf, callee)
	}
	return buf
}
