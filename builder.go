// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// New creates an empty HermesFile targeting the given bytecode
// version, ready for Add* calls followed by Bytes(). Grounded on
// file.go's New: a constructor that validates its one required input
// (there, a path; here, a version) up front rather than deferring the
// failure to first use.
func New(version uint32, opts *Options) (*HermesFile, error) {
	if _, ok := Features(version); !ok {
		return nil, ErrUnsupportedVersion
	}
	hf := &HermesFile{
		opts: opts,
	}
	hf.logger = opts.helper()
	hf.Header.Magic = HBCMagic
	hf.Header.Version = version
	return hf, nil
}

// AddFunction appends a function header and its decoded bytecode
// body. fh's flags must already agree with the data it carries —
// HasExceptionHandler requires a non-nil Handlers, HasDebugInfo
// requires a non-nil DebugOffsets — since this is the single place
// that keeps flags and data in sync per spec.md §4.8's failure
// semantics; Offset/ByteSize/InfoOffset are recomputed by Bytes() and
// may be left zero here. Returns the new function's index.
func (hf *HermesFile) AddFunction(fh FunctionHeader, instructions []Instruction) (int, error) {
	if fh.HasExceptionHandler && fh.Handlers == nil {
		return 0, ErrInconsistentFlags
	}
	if !fh.HasExceptionHandler && fh.Handlers != nil {
		return 0, ErrInconsistentFlags
	}
	if fh.HasDebugInfo && fh.DebugOffsets == nil {
		return 0, ErrInconsistentFlags
	}
	if !fh.HasDebugInfo && fh.DebugOffsets != nil {
		return 0, ErrInconsistentFlags
	}

	idx := len(hf.FunctionHeaders)
	hf.FunctionHeaders = append(hf.FunctionHeaders, fh)
	hf.FunctionBytecode = append(hf.FunctionBytecode, FunctionBytecode{
		FunctionIndex: idx,
		Instructions:  instructions,
	})
	return idx, nil
}

// SetDebugFilenames rebuilds the debug-info section's filename table
// and backing bytes from a flat ordered list of names, the filename
// half of the same shape SetStringPairsUnordered gives the string
// table.
func (hf *HermesFile) SetDebugFilenames(names []string) {
	hf.DebugInfo.Filenames = hf.DebugInfo.Filenames[:0]
	hf.DebugInfo.FilenameBytes = hf.DebugInfo.FilenameBytes[:0]
	for _, name := range names {
		offset := uint32(len(hf.DebugInfo.FilenameBytes))
		hf.DebugInfo.FilenameBytes = append(hf.DebugInfo.FilenameBytes, name...)
		hf.DebugInfo.Filenames = append(hf.DebugInfo.Filenames, FilenameEntry{
			Offset: offset,
			Length: uint32(len(name)),
		})
	}
}

// SetFileRegions replaces the debug-info section's file-region list.
func (hf *HermesFile) SetFileRegions(regions []FileRegion) {
	hf.DebugInfo.FileRegions = regions
}
