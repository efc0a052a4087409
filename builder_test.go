// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestNewRejectsUnsupportedVersion(t *testing.T) {
	if _, err := New(1, nil); err != ErrUnsupportedVersion {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestAddFunctionRejectsInconsistentFlags(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fh := FunctionHeader{HasExceptionHandler: true}
	if _, err := hf.AddFunction(fh, nil); err != ErrInconsistentFlags {
		t.Fatalf("expected ErrInconsistentFlags for HasExceptionHandler with nil Handlers, got %v", err)
	}

	fh2 := FunctionHeader{HasDebugInfo: true}
	if _, err := hf.AddFunction(fh2, nil); err != ErrInconsistentFlags {
		t.Fatalf("expected ErrInconsistentFlags for HasDebugInfo with nil DebugOffsets, got %v", err)
	}

	fh3 := FunctionHeader{Handlers: []ExceptionHandler{{Start: 0, End: 1, Target: 2}}}
	if _, err := hf.AddFunction(fh3, nil); err != ErrInconsistentFlags {
		t.Fatalf("expected ErrInconsistentFlags for Handlers with HasExceptionHandler false, got %v", err)
	}
}

func TestSetDebugFilenames(t *testing.T) {
	hf, err := New(Version90, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hf.SetDebugFilenames([]string{"a.js", "b.js"})
	if len(hf.DebugInfo.Filenames) != 2 {
		t.Fatalf("expected 2 filenames, got %d", len(hf.DebugInfo.Filenames))
	}
	if string(hf.DebugInfo.FilenameBytes) != "a.jsb.js" {
		t.Fatalf("filename bytes = %q", hf.DebugInfo.FilenameBytes)
	}
	if hf.DebugInfo.Filenames[1].Offset != 4 || hf.DebugInfo.Filenames[1].Length != 4 {
		t.Fatalf("second filename entry = %+v", hf.DebugInfo.Filenames[1])
	}
}
