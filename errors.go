// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import "errors"

// Sentinel errors for installer decoding. Use errors.Is in callers.
var (
	// ErrInvalidMagic means no known setup loader signature was found.
	ErrInvalidMagic = errors.New("no known setup loader signature")
	// ErrChecksumMismatch means the setup loader offset table checksum failed.
	ErrChecksumMismatch = errors.New("setup loader checksum mismatch")
	// ErrChunkChecksumMismatch means a stream chunk failed its CRC-32 check.
	ErrChunkChecksumMismatch = errors.New("stream chunk checksum mismatch")
	// ErrUnsupportedVersion means the version signature is not in the known table.
	ErrUnsupportedVersion = errors.New("unsupported setup data version")
	// ErrTruncatedInput means the input ended before a required field.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedHeader means the setup header contains contradictory data.
	ErrMalformedHeader = errors.New("malformed setup header")
	// ErrCodec means the compressed stream payload could not be decoded.
	ErrCodec = errors.New("codec error")
	// ErrEncoding means string bytes are invalid for the declared encoding.
	ErrEncoding = errors.New("string encoding error")
	// ErrDanglingReference means an entry references an index outside the target list.
	ErrDanglingReference = errors.New("dangling entry reference")
	// ErrNilReader means the reader is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrClosed means the reader or resource is already closed.
	ErrClosed = errors.New("reader or resource already closed")
	// ErrValueTooLarge means a length-prefixed value exceeds the configured limit.
	ErrValueTooLarge = errors.New("length-prefixed value exceeds limit")
	// ErrInvalidFilterPattern means one or more filter rules are invalid.
	ErrInvalidFilterPattern = errors.New("invalid filter rules")
)
