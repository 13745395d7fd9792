// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/ulikunitz/xz/lzma"
)

// CompressionMethod identifies how stream payloads were compressed.
type CompressionMethod uint8

const (
	// CompressionStored means payloads are kept verbatim.
	CompressionStored CompressionMethod = iota
	// CompressionZlib is raw DEFLATE in a zlib wrapper.
	CompressionZlib
	// CompressionBZip2 appears only in legacy file data chunks.
	CompressionBZip2
	// CompressionLZMA1 is a headerless LZMA1 stream prefixed with its five
	// property bytes.
	CompressionLZMA1
	// CompressionLZMA2 is declared by modern headers for file data.
	CompressionLZMA2
	// CompressionUnknown is the zero state before the header declares one.
	CompressionUnknown CompressionMethod = 0xff
)

// String returns the method name used in logs and errors.
func (c CompressionMethod) String() string {
	switch c {
	case CompressionStored:
		return "stored"
	case CompressionZlib:
		return "zlib"
	case CompressionBZip2:
		return "bzip2"
	case CompressionLZMA1:
		return "lzma1"
	case CompressionLZMA2:
		return "lzma2"
	default:
		return "unknown"
	}
}

// lzmaPropsLen is the size of the property block at the start of every
// LZMA1-compressed stream: one coder byte and a little-endian dictionary size.
const lzmaPropsLen = 5

// maxLzmaProps is the largest valid coder byte: lc=8, lp=4, pb=4 packed as
// (pb*5+lp)*9+lc.
const maxLzmaProps = (4*5+4)*9 + 8

// newDecompressor layers the codec for a stream over its chunk-assembled
// bytes. The stream does not record its plaintext size, so LZMA1 runs with an
// unknown-length header and callers stop at the fields they need.
func newDecompressor(src io.Reader, method CompressionMethod) (io.Reader, error) {
	switch method {
	case CompressionStored:
		return src, nil

	case CompressionZlib:
		zr, err := zlib.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("%w: zlib: %v", ErrCodec, err)
		}

		return zr, nil

	case CompressionLZMA1:
		return newLZMA1Reader(src)

	default:
		return nil, fmt.Errorf("%w: %s streams are not decodable here", ErrCodec, method)
	}
}

// newLZMA1Reader reads the five property bytes the stream starts with and
// rebuilds the classic 13-byte LZMA header the decoder expects, with the
// length field set to "unknown".
func newLZMA1Reader(src io.Reader) (io.Reader, error) {
	var props [lzmaPropsLen]byte
	if _, err := io.ReadFull(src, props[:]); err != nil {
		return nil, fmt.Errorf("%w: lzma properties: %v", ErrTruncatedInput, err)
	}

	if props[0] > maxLzmaProps {
		return nil, fmt.Errorf("%w: invalid lzma properties byte %#02x", ErrCodec, props[0])
	}

	var header [lzma.HeaderLen]byte
	copy(header[:lzmaPropsLen], props[:])
	binary.LittleEndian.PutUint64(header[lzmaPropsLen:], ^uint64(0))

	lr, err := lzma.NewReader(io.MultiReader(bytes.NewReader(header[:]), src))
	if err != nil {
		return nil, fmt.Errorf("%w: lzma: %v", ErrCodec, err)
	}

	return &lzma1Reader{lr: lr}, nil
}

// lzma1Reader adapts the decoder to streams without an end-of-stream marker.
// The setup compiler sizes the stream through the block header and emits raw
// LZMA1, so compressed input exhaustion is the normal end condition. The
// decoder reports it as io.ErrUnexpectedEOF while holding the final decoded
// bytes; draining it converts the condition into a clean EOF.
type lzma1Reader struct {
	lr *lzma.Reader
}

func (r *lzma1Reader) Read(p []byte) (int, error) {
	for {
		n, err := r.lr.Read(p)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			if n > 0 {
				return n, nil
			}

			continue
		}

		return n, err
	}
}
