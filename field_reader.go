// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import (
	"encoding/binary"
	"fmt"
	"io"
)

// fieldReader decodes the sequential field layout of a setup data stream.
// It owns the active code page, so every string field decodes through one
// place, and every primitive maps a short read to ErrTruncatedInput.
type fieldReader struct {
	r       io.Reader
	version KnownVersion
	caps    Caps
	// codepage is the active page for code-page builds. Language entries may
	// switch it mid-parse.
	codepage uint16
	// maxValue bounds a single length-prefixed value.
	maxValue uint32
	// warnings collects malformed but non-positional field values. A bad
	// enum byte does not desynchronize the field sequence, so decoding
	// continues and the finding is reported alongside the result.
	warnings []error

	buf [8]byte
}

// warnf records a recoverable malformed-field finding.
func (fr *fieldReader) warnf(format string, args ...any) {
	fr.warnings = append(fr.warnings, fmt.Errorf("%w: "+format, append([]any{ErrMalformedHeader}, args...)...))
}

func newFieldReader(r io.Reader, version KnownVersion, caps Caps, maxValue uint32) *fieldReader {
	return &fieldReader{
		r:        r,
		version:  version,
		caps:     caps,
		codepage: defaultCodepage,
		maxValue: maxValue,
	}
}

func (fr *fieldReader) readFull(p []byte) error {
	if _, err := io.ReadFull(fr.r, p); err != nil {
		return fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	}

	return nil
}

func (fr *fieldReader) readU8() (uint8, error) {
	if err := fr.readFull(fr.buf[:1]); err != nil {
		return 0, err
	}

	return fr.buf[0], nil
}

func (fr *fieldReader) readU16() (uint16, error) {
	if err := fr.readFull(fr.buf[:2]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(fr.buf[:2]), nil
}

func (fr *fieldReader) readU32() (uint32, error) {
	if err := fr.readFull(fr.buf[:4]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(fr.buf[:4]), nil
}

func (fr *fieldReader) readU64() (uint64, error) {
	if err := fr.readFull(fr.buf[:8]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(fr.buf[:8]), nil
}

func (fr *fieldReader) readI16() (int16, error) {
	v, err := fr.readU16()

	return int16(v), err
}

func (fr *fieldReader) readI32() (int32, error) {
	v, err := fr.readU32()

	return int32(v), err
}

// readN returns exactly n fresh bytes.
func (fr *fieldReader) readN(n int) ([]byte, error) {
	p := make([]byte, n)
	if err := fr.readFull(p); err != nil {
		return nil, err
	}

	return p, nil
}

// valueReadStep caps each allocation while draining a length-prefixed value,
// so a lying length fails on the read rather than on one huge make().
const valueReadStep = 1 << 16

// readRawValue reads one length-prefixed value: a u32 byte count followed by
// the bytes. A zero count is an absent value and returns nil.
func (fr *fieldReader) readRawValue() ([]byte, error) {
	length, err := fr.readU32()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	if length > fr.maxValue {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrValueTooLarge, length, fr.maxValue)
	}

	out := make([]byte, 0, min(int(length), valueReadStep))
	remaining := int(length)

	for remaining > 0 {
		step := min(remaining, valueReadStep)
		chunk := make([]byte, step)
		if err := fr.readFull(chunk); err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		remaining -= step
	}

	return out, nil
}

// readString decodes one string field in the build's native encoding:
// UTF-16LE on unicode builds, the active code page otherwise.
func (fr *fieldReader) readString() (string, error) {
	raw, err := fr.readRawValue()
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	if fr.caps.Unicode {
		return decodeUTF16(raw)
	}

	return decodeCodepage(raw, fr.codepage)
}

// readAnsiString decodes a field that stays code-page encoded even on
// unicode builds, such as license and pre-install info texts.
func (fr *fieldReader) readAnsiString() (string, error) {
	raw, err := fr.readRawValue()
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	return decodeCodepage(raw, defaultCodepage)
}

// readBlob reads a length-prefixed value kept as raw bytes.
func (fr *fieldReader) readBlob() ([]byte, error) {
	return fr.readRawValue()
}

// flagSetReader unpacks a packed bitfield. Flags are stored one bit per
// possible flag, filled LSB first, one byte per 8 bits; a 3-byte field is
// padded to 4 on disk.
type flagSetReader struct {
	fr        *fieldReader
	current   uint8
	bitPos    uint8
	bytesRead int
	flags     uint64
}

func newFlagSetReader(fr *fieldReader) *flagSetReader {
	return &flagSetReader{fr: fr, bitPos: 8}
}

func (f *flagSetReader) add(flag uint64) error {
	if f.bitPos == 8 {
		b, err := f.fr.readU8()
		if err != nil {
			return err
		}
		f.current = b
		f.bitPos = 0
		f.bytesRead++
	}

	if f.current>>f.bitPos&1 != 0 {
		f.flags |= flag
	}
	f.bitPos++

	return nil
}

func (f *flagSetReader) finalize() (uint64, error) {
	if f.bytesRead == 3 {
		if _, err := f.fr.readU8(); err != nil {
			return 0, err
		}
	}

	return f.flags, nil
}

// readFlagSet runs a gate table against the version and unpacks the bits that
// are present. The table order is the on-disk bit order.
func (fr *fieldReader) readFlagSet(gates []flagGate) (uint64, error) {
	fsr := newFlagSetReader(fr)

	for _, g := range gates {
		if !g.applies(fr.version) {
			continue
		}
		if err := fsr.add(g.flag); err != nil {
			return 0, err
		}
	}

	return fsr.finalize()
}
