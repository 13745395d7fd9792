// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/folbricht/pefile"
)

const (
	// loaderPointerOffset is where pre-5.1.5 executables keep the pointer to
	// the loader offset table.
	loaderPointerOffset = 0x30
	loaderMagic         = "Inno"
	// loaderResourceID names the RCDATA resource carrying the offset table
	// since 5.1.5.
	loaderResourceID = "11111"

	loaderSignatureLen = 12
)

// loaderSignatures maps offset table signatures to the loader revision that
// wrote them. The two legacy text signatures predate the binary form.
var loaderSignatures = []struct {
	sig     string
	version Version
	bits16  bool
}{
	{"rDlPtS02\x87eVx", ver(1, 2, 10), false},
	{"rDlPtS04\x87eVx", ver(4, 0, 0), false},
	{"rDlPtS05\x87eVx", ver(4, 0, 3), false},
	{"rDlPtS06\x87eVx", ver(4, 0, 10), false},
	{"rDlPtS07\x87eVx", ver(4, 1, 6), false},
	{"rDlPtS\xcd\xe6\xd7{\x0b*", ver(5, 1, 5), false},
	{"nS5W7dT\x83\xaa\x1b\x0fj", ver(5, 1, 5), false},
	{"i1.2.10--16\x1a", ver(1, 2, 10), true},
	{"i1.2.10--32\x1a", ver(1, 2, 10), false},
}

// Loader is the decoded setup loader offset table. It locates the embedded
// header and data sections inside the installer executable.
type Loader struct {
	// Version identifies the loader revision that wrote the table, not the
	// release that built the installer.
	Version  Version `json:"version" yaml:"version"`
	Revision uint32  `json:"revision" yaml:"revision"`

	MinSetupSize int64 `json:"minSetupSize" yaml:"minSetupSize"`

	// ExeOffset locates the compressed setup.e32 image.
	ExeOffset           int64  `json:"exeOffset" yaml:"exeOffset"`
	ExeCompressedSize   uint32 `json:"exeCompressedSize" yaml:"exeCompressedSize"`
	ExeUncompressedSize uint32 `json:"exeUncompressedSize" yaml:"exeUncompressedSize"`
	// ExeChecksum guards the uncompressed setup.e32, CRC-32 since 4.0.3 and
	// Adler-32 before.
	ExeChecksum      uint32 `json:"exeChecksum" yaml:"exeChecksum"`
	ExeChecksumCRC32 bool   `json:"exeChecksumCrc32" yaml:"exeChecksumCrc32"`

	MessageOffset uint32 `json:"messageOffset" yaml:"messageOffset"`

	// HeaderOffset locates the version signature and the compressed setup
	// header (setup-0.bin).
	HeaderOffset int64 `json:"headerOffset" yaml:"headerOffset"`
	// DataOffset locates the compressed file data (setup-1.bin).
	DataOffset int64 `json:"dataOffset" yaml:"dataOffset"`
}

// findLoader locates and decodes the loader offset table, trying the legacy
// constant-offset pointer first and falling back to the PE resource entry.
func findLoader(src io.ReaderAt, size int64) (*Loader, error) {
	loader, legacyErr := findLoaderLegacy(src, size)
	if legacyErr == nil {
		return loader, nil
	}

	loader, err := findLoaderResource(src, size)
	if err != nil {
		return nil, fmt.Errorf("loader table not found: %w (legacy pointer: %w)", err, legacyErr)
	}

	return loader, nil
}

func findLoaderLegacy(src io.ReaderAt, size int64) (*Loader, error) {
	var buf [12]byte
	if _, err := src.ReadAt(buf[:], loaderPointerOffset); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMagic, err)
	}

	if string(buf[:4]) != loaderMagic {
		return nil, fmt.Errorf("%w: no loader pointer at %#x", ErrInvalidMagic, loaderPointerOffset)
	}

	tableOffset := binary.LittleEndian.Uint32(buf[4:8])
	notTableOffset := binary.LittleEndian.Uint32(buf[8:12])
	if tableOffset != ^notTableOffset {
		return nil, fmt.Errorf("%w: loader pointer fails NOT check", ErrInvalidMagic)
	}

	return readLoaderTable(io.NewSectionReader(src, int64(tableOffset), size-int64(tableOffset)))
}

func findLoaderResource(src io.ReaderAt, size int64) (*Loader, error) {
	pe, err := pefile.New(io.NewSectionReader(src, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMagic, err)
	}

	resources, err := pe.GetResources()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMagic, err)
	}

	for _, res := range resources {
		parts := strings.Split(res.Name, "/")
		if len(parts) < 2 || parts[1] != loaderResourceID {
			continue
		}

		return readLoaderTable(strings.NewReader(string(res.Data)))
	}

	return nil, fmt.Errorf("%w: no loader resource entry", ErrInvalidMagic)
}

// readLoaderTable decodes the offset table. Everything except the message
// offset and the trailing checksum is CRC-covered.
func readLoaderTable(src io.Reader) (*Loader, error) {
	cr := newCRCReader(src)

	var sig [loaderSignatureLen]byte
	if _, err := io.ReadFull(cr, sig[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}

	loader, err := loaderForSignature(sig)
	if err != nil {
		return nil, err
	}

	if loader.Version.AtLeast(ver(5, 1, 5)) {
		if loader.Revision, err = readLoaderU32(cr); err != nil {
			return nil, err
		}
	}

	wide := loader.Revision >= 2

	if loader.MinSetupSize, err = readLoaderOffset(cr, wide); err != nil {
		return nil, err
	}
	if loader.ExeOffset, err = readLoaderOffset(cr, wide); err != nil {
		return nil, err
	}

	if loader.Version.Before(ver(4, 1, 6)) {
		if loader.ExeCompressedSize, err = readLoaderU32(cr); err != nil {
			return nil, err
		}
	}

	if loader.ExeUncompressedSize, err = readLoaderU32(cr); err != nil {
		return nil, err
	}

	loader.ExeChecksumCRC32 = loader.Version.AtLeast(ver(4, 0, 3))
	if loader.ExeChecksum, err = readLoaderU32(cr); err != nil {
		return nil, err
	}

	if loader.Version.Before(ver(4, 0, 0)) {
		// Outside the table checksum.
		if loader.MessageOffset, err = readLoaderU32(src); err != nil {
			return nil, err
		}
	}

	if loader.HeaderOffset, err = readLoaderOffset(cr, wide); err != nil {
		return nil, err
	}
	if loader.DataOffset, err = readLoaderOffset(cr, wide); err != nil {
		return nil, err
	}

	if wide {
		// Reserved padding dword.
		if _, err = readLoaderU32(cr); err != nil {
			return nil, err
		}
	}

	if loader.Version.AtLeast(ver(4, 0, 10)) {
		want := cr.Sum32()
		expected, err := readLoaderU32(src)
		if err != nil {
			return nil, err
		}
		if want != expected {
			return nil, fmt.Errorf("%w: loader table crc32 %#08x, expected %#08x",
				ErrChecksumMismatch, want, expected)
		}
	}

	return loader, nil
}

func loaderForSignature(sig [loaderSignatureLen]byte) (*Loader, error) {
	for _, known := range loaderSignatures {
		if string(sig[:]) != known.sig {
			continue
		}
		if known.bits16 {
			return nil, fmt.Errorf("%w: 16-bit installers are not supported", ErrUnsupportedVersion)
		}

		return &Loader{Version: known.version}, nil
	}

	return nil, fmt.Errorf("%w: unknown loader signature %q", ErrInvalidMagic, sig[:])
}

func readLoaderU32(src io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readLoaderOffset reads a table offset, an i64 in revision 2 tables and a
// u32 before.
func readLoaderOffset(src io.Reader, wide bool) (int64, error) {
	if !wide {
		v, err := readLoaderU32(src)

		return int64(v), err
	}

	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}

	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
