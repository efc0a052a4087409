// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"reflect"
	"testing"
)

func TestDebugInfoRoundTripPreV91(t *testing.T) {
	feat, _ := Features(Version84)
	di := DebugInfo{
		Filenames:     []FilenameEntry{{Offset: 0, Length: 4}},
		FilenameBytes: []byte("main"),
		FileRegions:   []FileRegion{{FromAddress: 0, FilenameID: 0, SourceMappingURLID: 0}},
		ScopeDescData: []byte{1, 2, 3, 4},
	}
	buf := encodeDebugInfo(di, feat)
	got, err := decodeDebugInfo(buf, 0, uint32(len(buf)), feat)
	if err != nil {
		t.Fatalf("decodeDebugInfo: %v", err)
	}
	if !reflect.DeepEqual(got.Filenames, di.Filenames) {
		t.Fatalf("filenames mismatch: %+v", got.Filenames)
	}
	if string(got.FilenameBytes) != "main" {
		t.Fatalf("filename bytes mismatch: %q", got.FilenameBytes)
	}
	if !reflect.DeepEqual(got.FileRegions, di.FileRegions) {
		t.Fatalf("file regions mismatch: %+v", got.FileRegions)
	}
	if !reflect.DeepEqual(got.ScopeDescData, di.ScopeDescData) {
		t.Fatalf("scope desc data mismatch: %+v", got.ScopeDescData)
	}
}

func TestDebugInfoRoundTripV91Callee(t *testing.T) {
	feat, _ := Features(Version93)
	di := DebugInfo{
		ScopeDescData:   []byte{0xAA},
		CalleeData:      []byte{0xBB, 0xBB},
		StringTableData: []byte{0xCC, 0xCC, 0xCC},
	}
	buf := encodeDebugInfo(di, feat)
	got, err := decodeDebugInfo(buf, 0, uint32(len(buf)), feat)
	if err != nil {
		t.Fatalf("decodeDebugInfo: %v", err)
	}
	if !reflect.DeepEqual(got.ScopeDescData, di.ScopeDescData) ||
		!reflect.DeepEqual(got.CalleeData, di.CalleeData) ||
		!reflect.DeepEqual(got.StringTableData, di.StringTableData) {
		t.Fatalf("opaque blob mismatch: %+v", got)
	}
}

func TestDebugInfoEmptyRoundTrips(t *testing.T) {
	feat, _ := Features(Version90)
	di := DebugInfo{}
	buf := encodeDebugInfo(di, feat)
	got, err := decodeDebugInfo(buf, 0, uint32(len(buf)), feat)
	if err != nil {
		t.Fatalf("decodeDebugInfo on empty debug info: %v", err)
	}
	if got.Header.FilenameCount != 0 || got.Header.FileRegionCount != 0 || got.Header.DebugDataSize != 0 {
		t.Fatalf("expected all-zero header for empty debug info, got %+v", got.Header)
	}
}
