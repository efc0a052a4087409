// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// DebugInfoHeader is the fixed prelude of the debug-info section, 24
// bytes pre-v91 or 28 bytes v91+ (VersionFeatures.DebugInfoHeaderSize),
// grounded on debug.go's ImageDebugDirectory fixed-prelude-then-payload
// shape.
type DebugInfoHeader struct {
	FilenameCount         uint32
	FilenameStorageSize   uint32
	FileRegionCount       uint32
	ScopeDescDataOffset   uint32
	TextifiedCalleeOffset uint32 // v91+ only
	StringTableOffset     uint32 // v91+ only
	DebugDataSize         uint32
}

func decodeDebugInfoHeader(b []byte, offset uint32, feat VersionFeatures) (DebugInfoHeader, uint32, error) {
	var h DebugInfoHeader
	cursor := offset

	read := func() (uint32, error) {
		v, err := readU32(b, cursor)
		cursor += 4
		return v, err
	}

	var err error
	if h.FilenameCount, err = read(); err != nil {
		return DebugInfoHeader{}, 0, err
	}
	if h.FilenameStorageSize, err = read(); err != nil {
		return DebugInfoHeader{}, 0, err
	}
	if h.FileRegionCount, err = read(); err != nil {
		return DebugInfoHeader{}, 0, err
	}
	if h.ScopeDescDataOffset, err = read(); err != nil {
		return DebugInfoHeader{}, 0, err
	}
	if feat.DebugInfoOffsetsHasCallee {
		if h.TextifiedCalleeOffset, err = read(); err != nil {
			return DebugInfoHeader{}, 0, err
		}
		if h.StringTableOffset, err = read(); err != nil {
			return DebugInfoHeader{}, 0, err
		}
	}
	if h.DebugDataSize, err = read(); err != nil {
		return DebugInfoHeader{}, 0, err
	}
	return h, cursor, nil
}

func encodeDebugInfoHeader(h DebugInfoHeader, feat VersionFeatures) []byte {
	buf := make([]byte, 0, feat.DebugInfoHeaderSize)
	buf = putU32(buf, h.FilenameCount)
	buf = putU32(buf, h.FilenameStorageSize)
	buf = putU32(buf, h.FileRegionCount)
	buf = putU32(buf, h.ScopeDescDataOffset)
	if feat.DebugInfoOffsetsHasCallee {
		buf = putU32(buf, h.TextifiedCalleeOffset)
		buf = putU32(buf, h.StringTableOffset)
	}
	buf = putU32(buf, h.DebugDataSize)
	return buf
}

// FilenameEntry is one (offset, length) record into the filename byte
// pool, the same shape as SmallStringEntry's overflow sibling.
type FilenameEntry struct {
	Offset uint32
	Length uint32
}

func decodeFilenameEntry(b []byte, offset uint32) (FilenameEntry, error) {
	o, err := readU32(b, offset)
	if err != nil {
		return FilenameEntry{}, err
	}
	l, err := readU32(b, offset+4)
	if err != nil {
		return FilenameEntry{}, err
	}
	return FilenameEntry{Offset: o, Length: l}, nil
}

func encodeFilenameEntry(e FilenameEntry) []byte {
	buf := putU32(nil, e.Offset)
	return putU32(buf, e.Length)
}

// FileRegion maps a bytecode address range in one function to a
// filename and source-mapping-url, both referenced by id into the
// debug string pool.
type FileRegion struct {
	FromAddress        uint32
	FilenameID         uint32
	SourceMappingURLID uint32
}

func decodeFileRegion(b []byte, offset uint32) (FileRegion, error) {
	a, err := readU32(b, offset)
	if err != nil {
		return FileRegion{}, err
	}
	f, err := readU32(b, offset+4)
	if err != nil {
		return FileRegion{}, err
	}
	s, err := readU32(b, offset+8)
	if err != nil {
		return FileRegion{}, err
	}
	return FileRegion{FromAddress: a, FilenameID: f, SourceMappingURLID: s}, nil
}

func encodeFileRegion(r FileRegion) []byte {
	buf := putU32(nil, r.FromAddress)
	buf = putU32(buf, r.FilenameID)
	return putU32(buf, r.SourceMappingURLID)
}

// DebugInfo is the full debug-info section: a header, the filename
// table and its backing bytes, the file-region list, and the opaque
// scope-descriptor / textified-callee / string-table blobs whose exact
// boundaries are computed from the header's offsets rather than parsed
// structurally — this codec treats them as data it stores and
// round-trips but does not interpret.
//
// An entirely empty DebugInfo (all counts zero, DebugDataSize zero) is
// valid and must round-trip, the shape a stripped bundle carries.
type DebugInfo struct {
	Header           DebugInfoHeader
	Filenames        []FilenameEntry
	FilenameBytes    []byte
	FileRegions      []FileRegion
	ScopeDescData    []byte
	CalleeData       []byte // v91+ only
	StringTableData  []byte // v91+ only
}

// decodeDebugInfo reads a full debug-info section starting at offset.
// sectionEnd bounds the opaque blobs' trailing extent (the region's
// end is otherwise only implicit in the file's overall layout).
func decodeDebugInfo(b []byte, offset uint32, sectionEnd uint32, feat VersionFeatures) (DebugInfo, error) {
	header, cursor, err := decodeDebugInfoHeader(b, offset, feat)
	if err != nil {
		return DebugInfo{}, err
	}

	var di DebugInfo
	di.Header = header
	headerEnd := cursor

	for i := uint32(0); i < header.FilenameCount; i++ {
		e, err := decodeFilenameEntry(b, cursor)
		if err != nil {
			return DebugInfo{}, err
		}
		di.Filenames = append(di.Filenames, e)
		cursor += 8
	}

	if uint64(cursor)+uint64(header.FilenameStorageSize) > uint64(len(b)) {
		return DebugInfo{}, ErrOutsideBoundary
	}
	di.FilenameBytes = append([]byte(nil), b[cursor:cursor+header.FilenameStorageSize]...)
	cursor += header.FilenameStorageSize
	cursor = alignUp(cursor, 4)

	for i := uint32(0); i < header.FileRegionCount; i++ {
		r, err := decodeFileRegion(b, cursor)
		if err != nil {
			return DebugInfo{}, err
		}
		di.FileRegions = append(di.FileRegions, r)
		cursor += 12
	}

	// The remaining opaque blobs are sliced by the offsets the header
	// carries relative to the end of the debug-info header (the same
	// base encodeDebugInfo uses), terminating at sectionEnd (the footer
	// for the last section in the file, or the next recorded offset
	// otherwise).
	base := headerEnd
	blobStart := base + header.ScopeDescDataOffset
	if feat.DebugInfoOffsetsHasCallee {
		calleeStart := base + header.TextifiedCalleeOffset
		strStart := base + header.StringTableOffset
		if blobStart > calleeStart || calleeStart > strStart || strStart > sectionEnd {
			return DebugInfo{}, ErrTruncated
		}
		di.ScopeDescData = append([]byte(nil), b[blobStart:calleeStart]...)
		di.CalleeData = append([]byte(nil), b[calleeStart:strStart]...)
		di.StringTableData = append([]byte(nil), b[strStart:sectionEnd]...)
	} else {
		if blobStart > sectionEnd {
			return DebugInfo{}, ErrTruncated
		}
		di.ScopeDescData = append([]byte(nil), b[blobStart:sectionEnd]...)
	}

	return di, nil
}

// encodeDebugInfo serializes di, recomputing its header's offsets and
// DebugDataSize from the blob lengths rather than trusting stale
// values carried over from a read.
func encodeDebugInfo(di DebugInfo, feat VersionFeatures) []byte {
	var buf []byte

	filenameTableSize := uint32(len(di.Filenames)) * 8
	fileRegionsStart := alignUp(filenameTableSize+uint32(len(di.FilenameBytes)), 4)
	scopeDescOffset := fileRegionsStart + uint32(len(di.FileRegions))*12

	h := di.Header
	h.FilenameCount = uint32(len(di.Filenames))
	h.FilenameStorageSize = uint32(len(di.FilenameBytes))
	h.FileRegionCount = uint32(len(di.FileRegions))
	h.ScopeDescDataOffset = scopeDescOffset

	if feat.DebugInfoOffsetsHasCallee {
		calleeOffset := scopeDescOffset + uint32(len(di.ScopeDescData))
		strOffset := calleeOffset + uint32(len(di.CalleeData))
		h.TextifiedCalleeOffset = calleeOffset
		h.StringTableOffset = strOffset
		h.DebugDataSize = strOffset + uint32(len(di.StringTableData))
	} else {
		h.DebugDataSize = scopeDescOffset + uint32(len(di.ScopeDescData))
	}

	buf = append(buf, encodeDebugInfoHeader(h, feat)...)
	for _, e := range di.Filenames {
		buf = append(buf, encodeFilenameEntry(e)...)
	}
	buf = append(buf, di.FilenameBytes...)
	buf = padTo(buf, 4)
	for _, r := range di.FileRegions {
		buf = append(buf, encodeFileRegion(r)...)
	}
	buf = append(buf, di.ScopeDescData...)
	if feat.DebugInfoOffsetsHasCallee {
		buf = append(buf, di.CalleeData...)
		buf = append(buf, di.StringTableData...)
	}
	return buf
}
