// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// StringKind is one of {String, Identifier, Predefined}, the segment a
// run of string_kinds entries describes.
type StringKind uint8

// String kinds.
const (
	StringKindString StringKind = iota
	StringKindIdentifier
	StringKindPredefined
)

// StringKindEntry is one run-length entry in the string_kinds table:
// Count consecutive string-storage entries all belong to Kind.
type StringKindEntry struct {
	Count uint32
	Kind  StringKind
}

// SmallStringEntry is one packed entry in the small string table:
// (utf16_flag:1, offset:23, length:8). Length == 255 means the true
// offset/length are stored in OverflowStringStorage, indexed by this
// entry's Offset field reinterpreted as an index rather than a byte
// offset — see OverflowStringEntry.
type SmallStringEntry struct {
	UTF16  bool
	Offset uint32
	Length uint8
}

// IsOverflow reports whether this entry redirects into the overflow
// string table.
func (e SmallStringEntry) IsOverflow() bool { return e.Length == 255 }

// OverflowStringEntry holds the true (storage offset, length) of a long
// string. It is looked up by index from a SmallStringEntry whose
// Length is 255 — grounded on symbol.go's COFF string-table
// redirection, where a short inline name is distinguished from "this
// field is actually an index into the separate long-name table" by a
// sentinel in the short field. Despite its name, Index holds the byte
// offset of the string within StringStorageBytes; the index-valued
// field is the redirecting SmallStringEntry's Offset, which names a
// position in OverflowStringStorage.
type OverflowStringEntry struct {
	Index  uint32
	Length uint32
}

// decodeSmallStringEntry unpacks one 4-byte packed entry.
func decodeSmallStringEntry(b []byte, offset uint32) (SmallStringEntry, error) {
	if uint64(offset)+4 > uint64(len(b)) {
		return SmallStringEntry{}, ErrOutsideBoundary
	}
	buf := b[offset : offset+4]
	return SmallStringEntry{
		UTF16:  readBits(buf, 0, 1) != 0,
		Offset: uint32(readBits(buf, 1, 23)),
		Length: uint8(readBits(buf, 24, 8)),
	}, nil
}

func encodeSmallStringEntry(e SmallStringEntry) []byte {
	buf := make([]byte, 4)
	if e.UTF16 {
		writeBits(buf, 0, 1, 1)
	}
	writeBits(buf, 1, 23, uint64(e.Offset))
	writeBits(buf, 24, 8, uint64(e.Length))
	return buf
}

func decodeOverflowStringEntry(b []byte, offset uint32) (OverflowStringEntry, error) {
	o, err := readU32(b, offset)
	if err != nil {
		return OverflowStringEntry{}, err
	}
	l, err := readU32(b, offset+4)
	if err != nil {
		return OverflowStringEntry{}, err
	}
	return OverflowStringEntry{Index: o, Length: l}, nil
}

func encodeOverflowStringEntry(e OverflowStringEntry) []byte {
	buf := make([]byte, 0, 8)
	buf = putU32(buf, e.Index)
	buf = putU32(buf, e.Length)
	return buf
}

// decodeStringKindEntry unpacks one string-kind run-length entry,
// 30-bit count/2-bit kind pre-v72 or 31-bit count/1-bit kind v72+.
//
// Every version this module supports (v76+) is v72+, so the 2-bit
// branch is dead for any file this library will actually see; it is
// kept because spec.md §9 requires version gates to be centralized and
// explicit rather than assumed away. Per the Open Question recorded in
// DESIGN.md, the single kind bit in the v72+ shape distinguishes
// "String" from "Identifier-or-Predefined" — Predefined strings are a
// fixed, VM-known subrange of identifiers in this era and are not
// separately tagged on disk, so StringKindPredefined round-trips
// through the v72+ wire shape as StringKindIdentifier.
func decodeStringKindEntry(b []byte, offset uint32, feat VersionFeatures) (StringKindEntry, error) {
	v, err := readU32(b, offset)
	if err != nil {
		return StringKindEntry{}, err
	}
	if feat.StringKindTwoBit {
		return StringKindEntry{
			Count: v & 0x3fffffff,
			Kind:  StringKind(v >> 30),
		}, nil
	}
	kind := StringKindString
	if v>>31 != 0 {
		kind = StringKindIdentifier
	}
	return StringKindEntry{Count: v & 0x7fffffff, Kind: kind}, nil
}

func encodeStringKindEntry(e StringKindEntry, feat VersionFeatures) []byte {
	var v uint32
	if feat.StringKindTwoBit {
		v = (e.Count & 0x3fffffff) | (uint32(e.Kind) << 30)
	} else {
		kindBit := uint32(0)
		if e.Kind != StringKindString {
			kindBit = 1
		}
		v = (e.Count & 0x7fffffff) | (kindBit << 31)
	}
	return putU32(nil, v)
}

// StringPair is one (value, kind) tuple, the flat input/output shape
// SetStringPairsUnordered and StringsByKind operate on.
type StringPair struct {
	Value string
	Kind  StringKind
}

// StringAt resolves string-table index idx to its decoded text,
// following overflow redirection and UTF-8/UTF-16 decoding per
// spec.md §4.4.
func (hf *HermesFile) StringAt(idx uint32) (string, error) {
	if idx >= uint32(len(hf.StringStorage)) {
		return "", ErrOutsideBoundary
	}
	entry := hf.StringStorage[idx]
	offset := entry.Offset
	length := uint32(entry.Length)
	if entry.IsOverflow() {
		if offset >= uint32(len(hf.OverflowStringStorage)) {
			return "", ErrOutsideBoundary
		}
		ov := hf.OverflowStringStorage[offset]
		offset = ov.Index
		length = ov.Length
	}
	if entry.UTF16 {
		byteLen := length * 2
		if uint64(offset)+uint64(byteLen) > uint64(len(hf.StringStorageBytes)) {
			return "", ErrOutsideBoundary
		}
		return decodeUTF16Lossy(hf.StringStorageBytes[offset : offset+byteLen]), nil
	}
	if uint64(offset)+uint64(length) > uint64(len(hf.StringStorageBytes)) {
		return "", ErrOutsideBoundary
	}
	return string(hf.StringStorageBytes[offset : offset+length]), nil
}

// decodeUTF16Lossy decodes little-endian UTF-16 code units, tolerating
// unpaired surrogates by substituting the Unicode replacement
// character — real Hermes bundles are documented to carry ill-formed
// surrogate pairs, so this must not fail. Grounded on helper.go's
// DecodeUTF16String, generalized from NUL-terminated to
// length-prefixed and from error-returning to lossy.
func decodeUTF16Lossy(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	runes := utf16.Decode(units)
	return string(runes)
}

// encodeUTF16 encodes s as little-endian UTF-16 code units. Used by
// the builder; the encoding itself is done by the standard library's
// unicode/utf16, the same package the decode path above uses.
func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = putU16(buf, u)
	}
	return buf
}

// needsUTF16 reports whether s contains any code point beyond the BMP
// (U+10000 and above), the condition spec.md scenario S4 uses to
// decide is_utf_16.
func needsUTF16(s string) bool {
	for _, r := range s {
		if r >= 0x10000 {
			return true
		}
	}
	return false
}

// validUTF8 reports whether b round-trips as UTF-8 without
// replacement, using xunicode's UTF-8 decoder. Nothing in the package
// calls it: the builder chooses between UTF-8 and UTF-16 storage with
// needsUTF16 alone.
func validUTF8(b []byte) bool {
	dec := xunicode.UTF8.NewDecoder()
	out, err := dec.Bytes(b)
	return err == nil && bytes.Equal(out, b) && utf8.Valid(b)
}

// StringsByKind returns every stored string, in storage order, paired
// with its segment kind as derived from StringKinds. This is the
// inverse of SetStringPairsUnordered for the round-trip property in
// spec.md §8 invariant 2.
func (hf *HermesFile) StringsByKind() ([]StringPair, error) {
	pairs := make([]StringPair, 0, len(hf.StringStorage))
	idx := uint32(0)
	for _, run := range hf.StringKinds {
		for i := uint32(0); i < run.Count; i++ {
			s, err := hf.StringAt(idx)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, StringPair{Value: s, Kind: run.Kind})
			idx++
		}
	}
	return pairs, nil
}

// SetStringPairsUnordered rebuilds the string-storage, overflow, byte
// buffer, and string-kind run-length tables from a flat ordered list
// of (value, kind) pairs, per spec.md §4.4's builder algorithm: a
// string of length >= 255 is redirected through the overflow table; a
// new kind run starts whenever the kind changes and the prior run (if
// non-empty) is flushed first.
func (hf *HermesFile) SetStringPairsUnordered(pairs []StringPair) error {
	hf.StringStorage = hf.StringStorage[:0]
	hf.OverflowStringStorage = hf.OverflowStringStorage[:0]
	hf.StringStorageBytes = hf.StringStorageBytes[:0]
	hf.StringKinds = hf.StringKinds[:0]
	hf.IdentifierHashes = hf.IdentifierHashes[:0]

	var runKind StringKind
	var runCount uint32
	haveRun := false

	flush := func() {
		if haveRun && runCount > 0 {
			hf.StringKinds = append(hf.StringKinds, StringKindEntry{Count: runCount, Kind: runKind})
		}
		runCount = 0
	}

	for _, p := range pairs {
		raw := []byte(p.Value)
		utf16Needed := needsUTF16(p.Value)

		var entryBytes []byte
		var length int
		if utf16Needed {
			entryBytes = encodeUTF16(p.Value)
			length = len(entryBytes) / 2
		} else {
			entryBytes = raw
			length = len(raw)
		}

		offset := uint32(len(hf.StringStorageBytes))
		hf.StringStorageBytes = append(hf.StringStorageBytes, entryBytes...)

		small := SmallStringEntry{UTF16: utf16Needed, Offset: offset}
		if length >= 255 {
			ovIdx := uint32(len(hf.OverflowStringStorage))
			hf.OverflowStringStorage = append(hf.OverflowStringStorage, OverflowStringEntry{
				Index:  offset,
				Length: uint32(length),
			})
			small.Offset = ovIdx
			small.Length = 255
		} else {
			small.Length = uint8(length)
		}
		hf.StringStorage = append(hf.StringStorage, small)

		if p.Kind == StringKindIdentifier || p.Kind == StringKindPredefined {
			hf.IdentifierHashes = append(hf.IdentifierHashes, HashString(p.Value))
		}

		if !haveRun || runKind != p.Kind {
			flush()
			runKind = p.Kind
			haveRun = true
		}
		runCount++
	}
	flush()
	return nil
}
