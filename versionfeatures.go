// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// Supported bytecode versions. Anything else is ErrUnsupportedVersion.
const (
	Version76 uint32 = 76
	Version84 uint32 = 84
	Version89 uint32 = 89
	Version90 uint32 = 90
	Version93 uint32 = 93
	Version94 uint32 = 94
	Version95 uint32 = 95
	Version96 uint32 = 96
)

// VersionFeatures centralizes every version-gated behavior of the
// container format in one place, per the source's own design note that
// these gates should not be scattered across individual codecs.
type VersionFeatures struct {
	// StringKindTwoBit is true pre-v72: a 30-bit count + 2-bit kind
	// field instead of v72+'s 31-bit count + 1-bit kind.
	StringKindTwoBit bool

	// HasBigInt is true v87+: the header carries big_int_count and
	// big_int_storage_size, and the bigint table/storage sections exist.
	HasBigInt bool

	// HasSegmentID is true v78+: the header field at the
	// cjs_module_offset position instead holds a segment_id.
	HasSegmentID bool

	// CJSModulesStaticallyResolved is true pre-v77: cjs_modules is a
	// flat list of resolved module-id integers rather than
	// (symbol_id, offset) pairs.
	CJSModulesStaticallyResolved bool

	// HasCJSModuleCount is true v84+: the header carries an explicit
	// cjs_module_count field.
	HasCJSModuleCount bool

	// HasFunctionSourceTable is true v84+: the function-source table
	// section exists.
	HasFunctionSourceTable bool

	// DebugInfoOffsetsHasCallee is true v91+: the per-function
	// DebugInfoOffsets triple carries a third (callee) field, and the
	// section is 4-byte aligned and the debug-info header is 28 bytes
	// instead of 24.
	DebugInfoOffsetsHasCallee bool

	// DebugInfoHeaderSize is 24 (pre-v91) or 28 (v91+) bytes.
	DebugInfoHeaderSize int
}

// Features returns the centralized version-gate record for version.
// ok is false when the version has no compiled-in opcode table.
func Features(version uint32) (VersionFeatures, bool) {
	switch version {
	case Version76, Version84, Version89, Version90, Version93, Version94, Version95, Version96:
		// fall through to field computation below
	default:
		return VersionFeatures{}, false
	}

	f := VersionFeatures{
		StringKindTwoBit:             version < 72,
		HasBigInt:                    version >= 87,
		HasSegmentID:                 version >= 78,
		CJSModulesStaticallyResolved: version < 77,
		HasCJSModuleCount:            version >= 84,
		HasFunctionSourceTable:       version >= 84,
		DebugInfoOffsetsHasCallee:    version >= 91,
	}
	if f.DebugInfoOffsetsHasCallee {
		f.DebugInfoHeaderSize = 28
	} else {
		f.DebugInfoHeaderSize = 24
	}
	return f, true
}

// opcodeTable returns the instruction-spec table for version, or nil
// if the version is unsupported.
func opcodeTable(version uint32) []InstructionSpec {
	switch version {
	case Version76:
		return opcodesV76
	case Version84:
		return opcodesV84
	case Version89:
		return opcodesV89
	case Version90:
		return opcodesV90
	case Version93:
		return opcodesV93
	case Version94:
		return opcodesV94
	case Version95:
		return opcodesV95
	case Version96:
		return opcodesV96
	default:
		return nil
	}
}
