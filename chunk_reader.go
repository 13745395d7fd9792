// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"fmt"
	"hash/crc32"
	"io"
)

// chunkSize is the payload capacity of one checksummed chunk.
const chunkSize = 4096

// chunkReader reassembles a checksummed chunk sequence into a plain byte
// stream. On disk the region is a series of frames, each a little-endian
// CRC-32 followed by up to 4096 payload bytes; only the final frame may be
// short. The checksum covers the stored payload bytes of its own frame and is
// verified before any byte of the frame is released to the caller.
type chunkReader struct {
	src io.Reader
	// remaining counts unread region bytes, checksum fields included.
	remaining int64
	buf       [chunkSize]byte
	pos       int
	length    int
	index     int
}

// newChunkReader wraps a reader positioned at the first frame of a chunked
// region of regionSize total bytes.
func newChunkReader(src io.Reader, regionSize int64) *chunkReader {
	return &chunkReader{src: src, remaining: regionSize}
}

func (c *chunkReader) Read(p []byte) (int, error) {
	total := 0

	for total < len(p) {
		if c.pos == c.length {
			ok, err := c.nextChunk()
			if err != nil {
				return total, err
			}
			if !ok {
				if total == 0 {
					return 0, io.EOF
				}

				return total, nil
			}
		}

		n := copy(p[total:], c.buf[c.pos:c.length])
		c.pos += n
		total += n
	}

	return total, nil
}

// nextChunk loads and verifies the next frame. It returns false at the clean
// end of the region.
func (c *chunkReader) nextChunk() (bool, error) {
	if c.remaining == 0 {
		return false, nil
	}

	if c.remaining <= 4 {
		return false, fmt.Errorf("%w: %d trailing bytes in chunked region", ErrTruncatedInput, c.remaining)
	}

	var head [4]byte
	if _, err := io.ReadFull(c.src, head[:]); err != nil {
		return false, fmt.Errorf("%w: chunk %d checksum: %v", ErrTruncatedInput, c.index, err)
	}
	c.remaining -= 4

	expected := uint32(head[0]) | uint32(head[1])<<8 | uint32(head[2])<<16 | uint32(head[3])<<24

	length := int64(chunkSize)
	if c.remaining < length {
		length = c.remaining
	}

	if _, err := io.ReadFull(c.src, c.buf[:length]); err != nil {
		return false, fmt.Errorf("%w: chunk %d payload: %v", ErrTruncatedInput, c.index, err)
	}
	c.remaining -= length

	if actual := crc32.ChecksumIEEE(c.buf[:length]); actual != expected {
		return false, fmt.Errorf("%w: chunk %d: got %08x, want %08x",
			ErrChunkChecksumMismatch, c.index, actual, expected)
	}

	c.pos = 0
	c.length = int(length)
	c.index++

	return true, nil
}
