// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "testing"

func TestHashString(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"global", 615793799},
		{"print", 2794059355},
		{"", 0},
	}
	for _, tt := range tests {
		if got := HashString(tt.in); got != tt.want {
			t.Errorf("HashString(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
