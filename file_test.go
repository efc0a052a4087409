// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMemoryMapsFile(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf, err := hf.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bundle.hbc")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.Header.Magic != HBCMagic {
		t.Fatalf("Magic = %#x, want %#x", got.Header.Magic, HBCMagic)
	}
	if err := got.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "does-not-exist.hbc"), nil); err == nil {
		t.Fatal("expected an error opening a nonexistent file")
	}
}

func TestFunctionDisplayNameFallback(t *testing.T) {
	hf := &HermesFile{}
	if got, want := hf.FunctionDisplayName(0), "$FUNC_0"; got != want {
		t.Fatalf("FunctionDisplayName = %q, want %q", got, want)
	}
}

func TestBigIntAtRendersDecimal(t *testing.T) {
	hf := &HermesFile{
		BigIntTable:   []BigIntTableEntry{{Offset: 0, Length: 2}},
		BigIntStorage: []byte{0x01, 0x00}, // big-endian 0x0100 = 256
	}
	got, err := hf.BigIntAt(0)
	if err != nil {
		t.Fatalf("BigIntAt: %v", err)
	}
	if got != "256n" {
		t.Fatalf("BigIntAt = %q, want \"256n\"", got)
	}
}
