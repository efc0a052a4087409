// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

// HashString computes the Jenkins one-at-a-time hash variant Hermes
// uses for identifier_hashes: init 0, per byte h = h+c; h = h+(h<<10);
// h = h^(h>>6). Unlike the textbook one-at-a-time hash, Hermes does
// not apply the usual avalanche finalization step — verified against
// the reference values hash("global") == 615793799 and
// hash("print") == 2794059355. The standalone CLI exposing just this
// function is out of scope per spec.md §1; the function itself is in
// scope as the container codec's identifier-hash producer.
func HashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	return h
}
