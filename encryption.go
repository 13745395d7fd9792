// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncryptionUse tells how much of the data section is encrypted.
type EncryptionUse uint8

const (
	EncryptNone EncryptionUse = iota
	EncryptFiles
	EncryptFull
)

// EncryptionHeader carries the PBKDF2 key derivation material for encrypted
// installers. Modern releases store it in front of the header stream,
// CRC-guarded; 6.4 embedded the same fields inside the setup header.
type EncryptionHeader struct {
	Use           EncryptionUse `json:"use" yaml:"use"`
	KDFSalt       [16]byte      `json:"-" yaml:"-"`
	KDFIterations uint32        `json:"kdfIterations" yaml:"kdfIterations"`
	BaseNonce     [24]byte      `json:"-" yaml:"-"`
	PasswordTest  uint32        `json:"passwordTest" yaml:"passwordTest"`
}

// readEncryptionPrelude decodes the standalone encryption header placed
// between the version signature and the header stream.
func readEncryptionPrelude(src io.Reader) (*EncryptionHeader, error) {
	expected, err := readLoaderU32(src)
	if err != nil {
		return nil, err
	}

	cr := newCRCReader(src)

	var buf [1 + 16 + 4 + 24 + 4]byte
	if _, err := io.ReadFull(cr, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}

	if got := cr.Sum32(); got != expected {
		return nil, fmt.Errorf("%w: encryption header crc32 %#08x, expected %#08x",
			ErrChecksumMismatch, got, expected)
	}

	h := &EncryptionHeader{Use: EncryptionUse(buf[0])}
	if h.Use > EncryptFull {
		return nil, fmt.Errorf("%w: encryption use byte %#02x", ErrMalformedHeader, buf[0])
	}
	copy(h.KDFSalt[:], buf[1:17])
	h.KDFIterations = binary.LittleEndian.Uint32(buf[17:21])
	copy(h.BaseNonce[:], buf[21:45])
	h.PasswordTest = binary.LittleEndian.Uint32(buf[45:49])

	return h, nil
}
