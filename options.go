// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "github.com/Pilfer/hermes-go/log"

// Default guards against adversarial counts, mirroring the teacher's
// MaxDefaultCOFFSymbolsCount / MaxDefaultRelocEntriesCount.
const (
	// MaxDefaultFunctionCount bounds how many function headers Parse
	// will allocate for before giving up.
	MaxDefaultFunctionCount = 1 << 22

	// MaxDefaultStringCount bounds how many string-table entries Parse
	// will allocate for before giving up.
	MaxDefaultStringCount = 1 << 24
)

// Options configures parsing of an HBC file.
type Options struct {
	// VerifyFooter recomputes the SHA-1 footer on Parse and returns
	// ErrFooterMismatch if it disagrees with the trailing 20 bytes.
	// Off by default, the same way the teacher defaults certificate
	// validation off.
	VerifyFooter bool

	// MaxFunctionCount bounds the function_count the header may
	// declare. Zero means MaxDefaultFunctionCount.
	MaxFunctionCount uint32

	// MaxStringCount bounds string_count + overflow_string_count.
	// Zero means MaxDefaultStringCount.
	MaxStringCount uint32

	// Logger receives structured log records. Nil uses a Warn-level
	// stderr logger.
	Logger log.Logger
}

func (o *Options) maxFunctionCount() uint32 {
	if o == nil || o.MaxFunctionCount == 0 {
		return MaxDefaultFunctionCount
	}
	return o.MaxFunctionCount
}

func (o *Options) maxStringCount() uint32 {
	if o == nil || o.MaxStringCount == 0 {
		return MaxDefaultStringCount
	}
	return o.MaxStringCount
}

func (o *Options) helper() *log.Helper {
	if o == nil || o.Logger == nil {
		return log.DefaultHelper()
	}
	return log.NewHelper(log.NewFilter(o.Logger, log.FilterLevel(log.LevelDebug)))
}
