package inno

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// fieldBuilder assembles stream plaintext in the on-disk field layout.
type fieldBuilder struct {
	buf bytes.Buffer
}

func (b *fieldBuilder) u8(v uint8) *fieldBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *fieldBuilder) u16(v uint16) *fieldBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fieldBuilder) u32(v uint32) *fieldBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fieldBuilder) u64(v uint64) *fieldBuilder {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

func (b *fieldBuilder) raw(p []byte) *fieldBuilder {
	b.buf.Write(p)
	return b
}

// str writes a length-prefixed code-page string. Fixtures stay ASCII so the
// bytes are valid in every single-byte page.
func (b *fieldBuilder) str(s string) *fieldBuilder {
	b.u32(uint32(len(s)))
	b.buf.WriteString(s)
	return b
}

// utf16str writes a length-prefixed UTF-16LE string.
func (b *fieldBuilder) utf16str(s string) *fieldBuilder {
	var enc []byte
	for _, r := range s {
		enc = append(enc, byte(r), byte(uint16(r)>>8))
	}
	b.u32(uint32(len(enc)))
	b.buf.Write(enc)
	return b
}

func (b *fieldBuilder) bytes() []byte {
	return b.buf.Bytes()
}

// packFlags encodes a flag set the way the chunked streams store it: one bit
// per applicable gate, LSB first, a 3-byte field padded to 4.
func packFlags(t *testing.T, gates []flagGate, v KnownVersion, set uint64) []byte {
	t.Helper()

	var out []byte
	var current uint8
	bit := 0

	for _, g := range gates {
		if !g.applies(v) {
			continue
		}
		if set&g.flag != 0 {
			current |= 1 << bit
		}
		bit++
		if bit == 8 {
			out = append(out, current)
			current, bit = 0, 0
		}
	}
	if bit > 0 {
		out = append(out, current)
	}
	if len(out) == 3 {
		out = append(out, 0)
	}

	return out
}

// chunkRegion frames plaintext into checksummed chunks of up to 4096 bytes.
func chunkRegion(data []byte) []byte {
	var out bytes.Buffer
	for len(data) > 0 {
		n := min(len(data), chunkSize)
		var head [4]byte
		binary.LittleEndian.PutUint32(head[:], crc32.ChecksumIEEE(data[:n]))
		out.Write(head[:])
		out.Write(data[:n])
		data = data[n:]
	}

	return out.Bytes()
}

// buildLegacyStream wraps plaintext in a pre-4.0.9 stored stream: the header
// carries checksummed compressed and uncompressed sizes, all-ones compressed
// size meaning stored.
func buildLegacyStream(plain []byte) []byte {
	var head fieldBuilder
	head.u32(^uint32(0)).u32(uint32(len(plain)))

	var out fieldBuilder
	out.u32(crc32.ChecksumIEEE(head.bytes()))
	out.raw(head.bytes())
	out.raw(chunkRegion(plain))

	return out.bytes()
}

// buildSizedStream wraps payload in a 4.0.9+ stream header. The payload is
// compressed with zlib first unless stored.
func buildSizedStream(t *testing.T, plain []byte, compressed bool) []byte {
	t.Helper()

	payload := plain
	if compressed {
		var z bytes.Buffer
		zw := zlib.NewWriter(&z)
		if _, err := zw.Write(plain); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
		payload = z.Bytes()
	}

	region := chunkRegion(payload)

	var head fieldBuilder
	head.u32(uint32(len(region)))
	if compressed {
		head.u8(1)
	} else {
		head.u8(0)
	}

	var out fieldBuilder
	out.u32(crc32.ChecksumIEEE(head.bytes()))
	out.raw(head.bytes())
	out.raw(region)

	return out.bytes()
}

// mustVersion resolves a signature string through the version table.
func mustVersion(t *testing.T, signature string) KnownVersion {
	t.Helper()

	raw := make([]byte, versionSignatureLen)
	copy(raw, signature)
	v, err := lookupVersion(raw)
	if err != nil {
		t.Fatalf("lookupVersion(%q): %v", signature, err)
	}

	return v
}
