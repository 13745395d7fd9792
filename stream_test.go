package inno

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

func TestOpenBlockStream_SizedStored(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")
	caps := capsFor(version)

	plain := []byte("stored stream payload")
	raw := buildSizedStream(t, plain, false)

	bs, err := NewBlockReader(bytes.NewReader(raw), caps)
	if err != nil {
		t.Fatalf("NewBlockReader: %v", err)
	}
	if bs.Method != CompressionStored {
		t.Fatalf("method %s, want stored", bs.Method)
	}
	if bs.headerStreamLen(caps) != int64(len(raw)) {
		t.Fatalf("headerStreamLen %d, want %d", bs.headerStreamLen(caps), len(raw))
	}

	got, err := io.ReadAll(bs)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("got %q, want %q", got, plain)
	}
}

func TestOpenBlockStream_SizedZlib(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (4.0.9)")
	caps := capsFor(version)

	plain := bytes.Repeat([]byte("zlib stream payload "), 500)
	raw := buildSizedStream(t, plain, true)

	bs, err := NewBlockReader(bytes.NewReader(raw), caps)
	if err != nil {
		t.Fatalf("NewBlockReader: %v", err)
	}
	if bs.Method != CompressionZlib {
		t.Fatalf("method %s, want zlib", bs.Method)
	}

	got := make([]byte, len(plain))
	if _, err := io.ReadFull(bs, got); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("decompressed payload differs from input")
	}
}

// buildSizedLZMAStream frames plain as a sized LZMA1 stream. The on-disk form
// is the five property bytes followed by raw data, so the encoder's 8-byte
// length field is stripped.
func buildSizedLZMAStream(t *testing.T, plain []byte, eosMarker bool) []byte {
	t.Helper()

	cfg := lzma.WriterConfig{EOSMarker: eosMarker}
	if !eosMarker {
		cfg.SizeInHeader = true
		cfg.Size = int64(len(plain))
	}

	var z bytes.Buffer
	zw, err := cfg.NewWriter(&z)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(plain); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	enc := z.Bytes()
	payload := append(append([]byte{}, enc[:lzmaPropsLen]...), enc[lzma.HeaderLen:]...)

	region := chunkRegion(payload)
	var head fieldBuilder
	head.u32(uint32(len(region))).u8(1)
	var raw fieldBuilder
	raw.u32(crc32.ChecksumIEEE(head.bytes()))
	raw.raw(head.bytes())
	raw.raw(region)

	return raw.bytes()
}

func TestOpenBlockStream_SizedLZMA(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")
	caps := capsFor(version)
	if !caps.StreamLZMA {
		t.Fatal("expected lzma capability at 5.5.7")
	}

	plain := bytes.Repeat([]byte("lzma stream payload "), 500)
	raw := buildSizedLZMAStream(t, plain, true)

	bs, err := NewBlockReader(bytes.NewReader(raw), caps)
	if err != nil {
		t.Fatalf("NewBlockReader: %v", err)
	}
	if bs.Method != CompressionLZMA1 {
		t.Fatalf("method %s, want lzma1", bs.Method)
	}

	got := make([]byte, len(plain))
	if _, err := io.ReadFull(bs, got); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("decompressed payload differs from input")
	}
}

func TestOpenBlockStream_SizedLZMANoMarker(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")
	caps := capsFor(version)

	// The setup compiler emits raw LZMA1 without an end-of-stream marker.
	plain := bytes.Repeat([]byte("lzma stream payload "), 500)
	raw := buildSizedLZMAStream(t, plain, false)

	bs, err := NewBlockReader(bytes.NewReader(raw), caps)
	if err != nil {
		t.Fatalf("NewBlockReader: %v", err)
	}

	got := make([]byte, len(plain))
	if _, err := io.ReadFull(bs, got); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("decompressed payload differs from input")
	}

	var b [1]byte
	if n, err := bs.Read(b[:]); n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("read past end: n=%d err=%v, want clean EOF", n, err)
	}
}

func TestOpenBlockStream_LegacyStored(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (1.3.21)")
	caps := capsFor(version)

	plain := bytes.Repeat([]byte("legacy payload "), 400) // spans two chunks
	raw := buildLegacyStream(plain)

	bs, err := NewBlockReader(bytes.NewReader(raw), caps)
	if err != nil {
		t.Fatalf("NewBlockReader: %v", err)
	}
	if bs.Method != CompressionStored {
		t.Fatalf("method %s, want stored", bs.Method)
	}
	if bs.headerStreamLen(caps) != int64(len(raw)) {
		t.Fatalf("headerStreamLen %d, want %d", bs.headerStreamLen(caps), len(raw))
	}

	got := make([]byte, len(plain))
	if _, err := io.ReadFull(bs, got); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("stored payload differs from input")
	}
}

func TestOpenBlockStream_HeaderChecksumMismatch(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")
	caps := capsFor(version)

	raw := buildSizedStream(t, []byte("payload"), false)
	raw[0] ^= 0xff // corrupt the expected checksum

	if _, err := NewBlockReader(bytes.NewReader(raw), caps); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("got %v, want ErrChecksumMismatch", err)
	}
}

func TestOpenBlockStream_Truncated(t *testing.T) {
	version := mustVersion(t, "Inno Setup Setup Data (5.5.7) (u)")
	caps := capsFor(version)

	if _, err := NewBlockReader(bytes.NewReader([]byte{1, 2}), caps); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}
