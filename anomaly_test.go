// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestAddAnomalyDedupes(t *testing.T) {
	hf := &HermesFile{}
	hf.addAnomaly(AnoNoFunctions)
	hf.addAnomaly(AnoNoFunctions)
	if len(hf.Anomalies) != 1 {
		t.Fatalf("expected one deduped anomaly, got %v", hf.Anomalies)
	}
}

func TestGetAnomaliesGlobalCodeIndexOutOfRange(t *testing.T) {
	hf := &HermesFile{}
	hf.Header.GlobalCodeIndex = 3
	hf.getAnomalies()

	found := false
	for _, a := range hf.Anomalies {
		if a == AnoGlobalCodeIndexOutOfRange {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected AnoGlobalCodeIndexOutOfRange, got %v", hf.Anomalies)
	}
}

func TestGetAnomaliesManyOverflowStrings(t *testing.T) {
	hf := &HermesFile{}
	hf.Header.StringCount = 10
	hf.Header.OverflowStringCount = 5
	hf.getAnomalies()

	found := false
	for _, a := range hf.Anomalies {
		if a == AnoManyOverflowStrings {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected AnoManyOverflowStrings, got %v", hf.Anomalies)
	}
}

func TestGetAnomaliesCleanFileHasNone(t *testing.T) {
	hf := &HermesFile{}
	hf.Header.FunctionCount = 1
	hf.FunctionHeaders = []FunctionHeader{{}}
	hf.DebugInfo.Header.FilenameCount = 1

	hf.getAnomalies()
	if len(hf.Anomalies) != 0 {
		t.Fatalf("expected no anomalies, got %v", hf.Anomalies)
	}
}
