// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestParseTooSmallBuffer(t *testing.T) {
	if _, err := OpenBytes(make([]byte, 10), nil); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestParseEnforcesMaxFunctionCount(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	// Inflate the header's declared function_count without adding real
	// function-header records, tripping the configured maximum.
	feat, _ := Features(Version90)
	hf.Header.FunctionCount = 5
	bad := encodeHeader(hf.Header, feat)
	copy(buf[:HeaderSize], bad)

	if _, err := OpenBytes(buf, &Options{MaxFunctionCount: 2}); err != ErrTooManyFunctions {
		t.Fatalf("expected ErrTooManyFunctions, got %v", err)
	}
}

func TestAnomalyNoFunctions(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := OpenBytes(buf, nil)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer got.Close()

	found := false
	for _, a := range got.Anomalies {
		if a == AnoNoFunctions {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected AnoNoFunctions anomaly, got %v", got.Anomalies)
	}
}

func TestAnomalyEmptyDebugInfo(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	table := opcodeTable(Version90)
	inst, err := decodeInstruction(table, []byte{8, 1, 2}, 0)
	if err != nil {
		t.Fatalf("decodeInstruction: %v", err)
	}
	if _, err := hf.AddFunction(FunctionHeader{}, []Instruction{inst}); err != nil {
		t.Fatalf("AddFunction: %v", err)
	}
	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := OpenBytes(buf, nil)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer got.Close()

	found := false
	for _, a := range got.Anomalies {
		if a == AnoEmptyDebugInfo {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected AnoEmptyDebugInfo anomaly, got %v", got.Anomalies)
	}
}
