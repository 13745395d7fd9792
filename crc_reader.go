// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"hash"
	"hash/crc32"
	"io"
)

// crcReader forwards reads to the wrapped reader while keeping a running
// CRC-32 (IEEE) of every byte that passed through. Stream and loader headers
// store an expected checksum next to the checksummed fields.
type crcReader struct {
	r   io.Reader
	sum hash.Hash32
}

func newCRCReader(r io.Reader) *crcReader {
	return &crcReader{r: r, sum: crc32.NewIEEE()}
}

func (c *crcReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		_, _ = c.sum.Write(p[:n])
	}

	return n, err
}

// Sum32 returns the checksum of all bytes read so far.
func (c *crcReader) Sum32() uint32 {
	return c.sum.Sum32()
}
