// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// Anomalies recorded about an otherwise-parseable HBC file. These are
// conditions the format permits but that are unusual enough to be
// worth surfacing to an analyst, the same role the teacher's
// GetAnomalies plays for PE files: none of them prevent the Hermes VM
// from loading the file.
var (
	// AnoEmptyDebugInfo is reported when the debug-info section has
	// zero filenames, zero file regions, and zero debug data — the
	// shape a stripped release bundle carries.
	AnoEmptyDebugInfo = "debug-info section is empty (stripped bundle)"

	// AnoNoFunctions is reported when function_count is 0, a file with
	// no callable code.
	AnoNoFunctions = "function_count is 0"

	// AnoGlobalCodeIndexOutOfRange is reported when global_code_index
	// does not name a function in function_headers.
	AnoGlobalCodeIndexOutOfRange = "global_code_index does not reference a defined function"

	// AnoManyOverflowStrings is reported when more than a quarter of
	// the string table redirects through overflow storage, an unusual
	// ratio for bundler-emitted string pools.
	AnoManyOverflowStrings = "overflow_string_count is more than 25% of string_count"

	// AnoUnreachableOpcode is reported when a decoded function's
	// bytecode contains an instruction that decodes as Unreachable:
	// opcode byte 0, or a byte with no defined mnemonic in its
	// version's opcode table.
	AnoUnreachableOpcode = "function bytecode contains an Unreachable opcode byte"

	// AnoPromotedFunctionHeader is reported when a function header was
	// promoted to a Large record on write — not invalid, but unusual
	// for a fresh build rather than a re-encoded large file.
	AnoPromotedFunctionHeader = "function header promoted to Large record"
)

// getAnomalies inspects hf's already-parsed tables and records any of
// the conditions above. It never returns an error: every check here is
// advisory, not a parse failure.
func (hf *HermesFile) getAnomalies() {
	if hf.Header.FunctionCount == 0 {
		hf.addAnomaly(AnoNoFunctions)
	}

	if hf.Header.GlobalCodeIndex >= uint32(len(hf.FunctionHeaders)) {
		hf.addAnomaly(AnoGlobalCodeIndexOutOfRange)
	}

	if hf.Header.StringCount > 0 {
		if uint64(hf.Header.OverflowStringCount)*4 > uint64(hf.Header.StringCount) {
			hf.addAnomaly(AnoManyOverflowStrings)
		}
	}

	if hf.DebugInfo.Header.FilenameCount == 0 &&
		hf.DebugInfo.Header.FileRegionCount == 0 &&
		hf.DebugInfo.Header.DebugDataSize == 0 {
		hf.addAnomaly(AnoEmptyDebugInfo)
	}

	for _, fb := range hf.FunctionBytecode {
		for _, inst := range fb.Instructions {
			if inst.Mnemonic == unreachableSpec.Mnemonic {
				hf.addAnomaly(AnoUnreachableOpcode)
			}
		}
	}
}

// addAnomaly appends anomaly to hf.Anomalies if not already present.
func (hf *HermesFile) addAnomaly(anomaly string) {
	for _, a := range hf.Anomalies {
		if a == anomaly {
			return
		}
	}
	hf.Anomalies = append(hf.Anomalies, anomaly)
}
