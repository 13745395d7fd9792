// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BlockReader is one decoded setup data stream: a checksummed header, a
// chunked region and a codec stacked on top. The decoded plaintext is read
// through the embedded reader.
type BlockReader struct {
	io.Reader

	// Method is the codec resolved from the stream header.
	Method CompressionMethod
	// StoredSize is the on-disk length of the chunked region in bytes,
	// chunk checksums included.
	StoredSize int64
}

// NewBlockReader validates a stream header at the current position of src
// and returns a reader over the stream plaintext. Extraction tools can reuse
// it to walk streams beyond the two the metadata parser consumes.
//
// Since 4.0.9 the header is an expected CRC-32 followed by the checksummed
// pair (stored size u32, compressed flag u8); compressed streams are LZMA1
// from 4.1.6 and zlib before. Older headers carry checksummed compressed and
// uncompressed u32 sizes, an all-ones compressed size marks a stored stream,
// and the size excludes the per-chunk checksum overhead.
func NewBlockReader(src io.Reader, caps Caps) (*BlockReader, error) {
	var rawCRC [4]byte
	if _, err := io.ReadFull(src, rawCRC[:]); err != nil {
		return nil, fmt.Errorf("%w: stream header checksum: %v", ErrTruncatedInput, err)
	}
	expected := binary.LittleEndian.Uint32(rawCRC[:])

	cr := newCRCReader(src)

	var (
		method     CompressionMethod
		storedSize int64
	)

	if caps.StreamHeaderSized {
		var head [5]byte
		if _, err := io.ReadFull(cr, head[:]); err != nil {
			return nil, fmt.Errorf("%w: stream header: %v", ErrTruncatedInput, err)
		}

		storedSize = int64(binary.LittleEndian.Uint32(head[:4]))

		switch {
		case head[4] == 0:
			method = CompressionStored
		case caps.StreamLZMA:
			method = CompressionLZMA1
		default:
			method = CompressionZlib
		}
	} else {
		var head [8]byte
		if _, err := io.ReadFull(cr, head[:]); err != nil {
			return nil, fmt.Errorf("%w: stream header: %v", ErrTruncatedInput, err)
		}

		compressedSize := binary.LittleEndian.Uint32(head[:4])
		uncompressedSize := binary.LittleEndian.Uint32(head[4:])

		if compressedSize == ^uint32(0) {
			method = CompressionStored
			storedSize = int64(uncompressedSize)
		} else {
			method = CompressionZlib
			storedSize = int64(compressedSize)
		}

		// The legacy size field does not count the chunk checksums.
		chunks := (storedSize + chunkSize - 1) / chunkSize
		storedSize += chunks * 4
	}

	if actual := cr.Sum32(); actual != expected {
		return nil, fmt.Errorf("%w: stream header: got %08x, want %08x",
			ErrChecksumMismatch, actual, expected)
	}

	plain, err := newDecompressor(newChunkReader(io.LimitReader(src, storedSize), storedSize), method)
	if err != nil {
		return nil, err
	}

	return &BlockReader{Reader: plain, Method: method, StoredSize: storedSize}, nil
}

// headerStreamLen is the number of raw bytes a stream occupies on disk,
// header included. Parsers use it to seek to the stream that follows.
func (b *BlockReader) headerStreamLen(caps Caps) int64 {
	if caps.StreamHeaderSized {
		return 4 + 5 + b.StoredSize
	}

	return 4 + 8 + b.StoredSize
}
