// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"strings"
	"testing"
)

func TestSmallStringEntryRoundTrip(t *testing.T) {
	e := SmallStringEntry{UTF16: true, Offset: 1000, Length: 40}
	buf := encodeSmallStringEntry(e)
	got, err := decodeSmallStringEntry(buf, 0)
	if err != nil {
		t.Fatalf("decodeSmallStringEntry: %v", err)
	}
	if got != e {
		t.Fatalf("got %+v, want %+v", got, e)
	}
}

func TestSmallStringEntryOverflowSentinel(t *testing.T) {
	e := SmallStringEntry{Length: 255}
	if !e.IsOverflow() {
		t.Fatal("Length 255 should report IsOverflow")
	}
	e2 := SmallStringEntry{Length: 254}
	if e2.IsOverflow() {
		t.Fatal("Length 254 should not report IsOverflow")
	}
}

func TestStringKindEntryRoundTripV72Plus(t *testing.T) {
	feat, _ := Features(Version90)
	e := StringKindEntry{Count: 100, Kind: StringKindIdentifier}
	buf := encodeStringKindEntry(e, feat)
	got, err := decodeStringKindEntry(buf, 0, feat)
	if err != nil {
		t.Fatalf("decodeStringKindEntry: %v", err)
	}
	if got != e {
		t.Fatalf("got %+v, want %+v", got, e)
	}
}

func TestLongStringRedirectsThroughOverflow(t *testing.T) {
	hf := &HermesFile{}
	longStr := strings.Repeat("x", 300)
	if err := hf.SetStringPairsUnordered([]StringPair{{Value: longStr, Kind: StringKindString}}); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}
	if !hf.StringStorage[0].IsOverflow() {
		t.Fatal("300-byte string should redirect through overflow table")
	}
	if len(hf.OverflowStringStorage) != 1 || hf.OverflowStringStorage[0].Length != 300 {
		t.Fatalf("overflow entry mismatch: %+v", hf.OverflowStringStorage)
	}
	got, err := hf.StringAt(0)
	if err != nil {
		t.Fatalf("StringAt: %v", err)
	}
	if got != longStr {
		t.Fatal("overflow string did not round-trip")
	}
}

func TestUTF16StringRoundTrip(t *testing.T) {
	hf := &HermesFile{}
	s := "hi \U0001F600" // supplementary-plane rune forces UTF-16 storage
	if err := hf.SetStringPairsUnordered([]StringPair{{Value: s, Kind: StringKindString}}); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}
	if !hf.StringStorage[0].UTF16 {
		t.Fatal("string with a supplementary-plane rune should be stored as UTF-16")
	}
	got, err := hf.StringAt(0)
	if err != nil {
		t.Fatalf("StringAt: %v", err)
	}
	if got != s {
		t.Fatalf("got %q, want %q", got, s)
	}
}

func TestStringPairsRoundTripProperty(t *testing.T) {
	hf := &HermesFile{}
	pairs := []StringPair{
		{Value: "foo", Kind: StringKindString},
		{Value: "bar", Kind: StringKindString},
		{Value: "global", Kind: StringKindIdentifier},
		{Value: strings.Repeat("y", 260), Kind: StringKindIdentifier},
	}
	if err := hf.SetStringPairsUnordered(pairs); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}
	got, err := hf.StringsByKind()
	if err != nil {
		t.Fatalf("StringsByKind: %v", err)
	}
	if len(got) != len(pairs) {
		t.Fatalf("got %d pairs, want %d", len(got), len(pairs))
	}
	for i, p := range pairs {
		if got[i] != p {
			t.Fatalf("pair %d: got %+v, want %+v", i, got[i], p)
		}
	}
}

func TestIdentifierHashesRecordedForIdentifiersOnly(t *testing.T) {
	hf := &HermesFile{}
	pairs := []StringPair{
		{Value: "not-an-identifier", Kind: StringKindString},
		{Value: "global", Kind: StringKindIdentifier},
	}
	if err := hf.SetStringPairsUnordered(pairs); err != nil {
		t.Fatalf("SetStringPairsUnordered: %v", err)
	}
	if len(hf.IdentifierHashes) != 1 || hf.IdentifierHashes[0] != HashString("global") {
		t.Fatalf("identifier hashes = %v, want [%d]", hf.IdentifierHashes, HashString("global"))
	}
}
