// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package hermes

import "errors"

// Sentinel errors surfaced by the codec. The parser never attempts
// repair; it reports and lets the caller decide, the same policy the
// teacher applies to corrupt PE input.
var (
	// ErrOutsideBoundary is returned when a read would reach past the
	// end of the buffer.
	ErrOutsideBoundary = errors.New("hermes: reading data outside boundary")

	// ErrBadMagic is returned when the 8-byte magic at the start of the
	// file does not match the HBC magic constant.
	ErrBadMagic = errors.New("hermes: magic number not found, not an HBC file")

	// ErrTruncated is returned when the input is shorter than the
	// 128-byte header, or when the debug-info header's blob offsets are
	// out of order or point past the end of the section. Other reads
	// past the end of the buffer return ErrOutsideBoundary.
	ErrTruncated = errors.New("hermes: unexpected end of stream")

	// ErrUnsupportedVersion is returned when the header's version has
	// no compiled-in opcode table.
	ErrUnsupportedVersion = errors.New("hermes: unsupported bytecode version")

	// ErrFooterMismatch is returned by Parse, when Options.VerifyFooter
	// is set, if the trailing SHA-1 does not match the hash of the
	// preceding bytes.
	ErrFooterMismatch = errors.New("hermes: footer SHA-1 does not match file contents")

	// ErrInconsistentFlags is returned when a builder call would leave
	// a function header's flags out of sync with its data, e.g.
	// has_exception_handler set with no handler list supplied.
	ErrInconsistentFlags = errors.New("hermes: function header flags inconsistent with data")

	// ErrTooManyFunctions / ErrTooManyStrings guard against adversarial
	// counts the way MaxDefaultCOFFSymbolsCount guards COFF parsing.
	ErrTooManyFunctions = errors.New("hermes: function count exceeds configured maximum")
	ErrTooManyStrings   = errors.New("hermes: string count exceeds configured maximum")

	// ErrInvalidBitfield is returned when a packed field (e.g. a
	// prohibit-invoke tag) carries a value the format does not define.
	ErrInvalidBitfield = errors.New("hermes: invalid bitfield contents")
)
